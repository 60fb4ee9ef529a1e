// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every error returned by this package either IS one of the sentinels below or
// wraps one with operation context ("<Op>: <detail>: %w"). Callers match with
// errors.Is; message text is never part of the contract.

package vector

import "errors"

// ERROR KINDS
// -----------
// construction:  ErrEmptyInput, ErrInvalidInput
// binary ops:    ErrDimensionMismatch, ErrContextMismatch
// zero vector:   ErrZeroVector (kind) <- ErrNormalizeZero, ErrAngleWithZero
// arguments:     ErrInvalidTolerance, ErrIndexOutOfRange

var (
	// ErrEmptyInput is returned by constructors given no coordinates.
	ErrEmptyInput = errors.New("vector: the coordinates must be nonempty")

	// ErrInvalidInput is returned when the input is not a sequence, or when an
	// element cannot be coerced to a decimal (NaN, ±Inf, unparsable text,
	// unsupported element type).
	ErrInvalidInput = errors.New("vector: the coordinates must be a sequence of finite numbers")

	// ErrDimensionMismatch is returned by binary operations whose operands
	// have different dimensions. Operands are never truncated to the shorter length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrContextMismatch is returned by binary operations whose operands were
	// built under different precision contexts.
	ErrContextMismatch = errors.New("vector: precision context mismatch")

	// ErrZeroVector is the kind shared by every zero-vector failure.
	// Match it with errors.Is to catch both ErrNormalizeZero and ErrAngleWithZero.
	ErrZeroVector = errors.New("vector: zero vector")

	// ErrInvalidTolerance is returned when a predicate tolerance is NaN, ±Inf or negative.
	ErrInvalidTolerance = errors.New("vector: tolerance must be finite and non-negative")

	// ErrIndexOutOfRange is returned by At for an index outside [0, Dimension()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
)

// Zero-vector variants. Each is its own sentinel and also reports itself as
// ErrZeroVector, so AngleWith can tell a normalization failure apart from any
// other error by identity.
var (
	// ErrNormalizeZero is returned by Normalized on a vector of zero magnitude.
	ErrNormalizeZero error = zeroVectorError("cannot normalize a zero vector")

	// ErrAngleWithZero is returned by AngleWith (and the predicates built on it)
	// when either operand is the zero vector.
	ErrAngleWithZero error = zeroVectorError("cannot compute an angle with the zero vector")
)

// zeroVectorError tags a message with the ErrZeroVector kind.
type zeroVectorError string

func (e zeroVectorError) Error() string { return "vector: " + string(e) }

// Is reports the ErrZeroVector kind.
func (e zeroVectorError) Is(target error) bool { return target == ErrZeroVector }
