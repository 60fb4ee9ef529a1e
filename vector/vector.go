// SPDX-License-Identifier: MIT

// Package vector - Vector value type, construction and accessors.
//
// Purpose:
//   - Hold an ordered, non-empty sequence of decimal coordinates together with
//     the Context they were built under.
//   - Coerce every input to decimal exactly once, at construction.
//   - Never expose the backing slice: accessors copy.
//
// Complexity quicksheet:
//   - constructors: O(n); At/Dimension/Context: O(1); Coordinates/Floats/String: O(n).

package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ---------- error context tags ----------

const (
	opNew          = "New"
	opFromStrings  = "FromStrings"
	opFromDecimals = "FromDecimals"
	opFrom         = "From"
	opAt           = "At"
)

// ---------- Formatting literals ----------

const (
	_fmtPrefix = "Vector: ("
	_fmtSep    = ", "
	_fmtClose  = ")"
)

// Coordinates whose leading digit sits at 10^e with e outside
// [_sciMinExp, _sciMaxExp] are printed in exponent form ("7.07E-301").
const (
	_sciMinExp = -6
	_sciMaxExp = 20
)

// Vector is an immutable point/direction in n-dimensional Euclidean space.
//   - coords holds at least one coordinate, each already rounded to ctx precision.
//   - ctx is the precision context shared by every result derived from this vector.
//
// The zero Vector has dimension 0 and is not a valid operand; obtain vectors
// from the constructors only.
type Vector struct {
	coords []decimal.Decimal
	ctx    Context
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector{}

// New builds a Vector under DefaultContext from float64 coordinates.
// See Context.New.
func New(coords ...float64) (Vector, error) { return defaultContext.New(coords...) }

// FromStrings builds a Vector under DefaultContext from decimal literals.
// See Context.FromStrings.
func FromStrings(coords ...string) (Vector, error) { return defaultContext.FromStrings(coords...) }

// FromDecimals builds a Vector under DefaultContext. See Context.FromDecimals.
func FromDecimals(coords ...decimal.Decimal) (Vector, error) {
	return defaultContext.FromDecimals(coords...)
}

// From builds a Vector under DefaultContext from any supported sequence.
// See Context.From.
func From(values any) (Vector, error) { return defaultContext.From(values) }

// New builds a Vector from float64 coordinates.
// Each value is converted with decimal.NewFromFloat, which keeps the shortest
// decimal that round-trips (8.218 becomes exactly 8.218, not its binary expansion).
//
// Errors:
//   - ErrEmptyInput when no coordinates are given.
//   - ErrInvalidInput (wrapped with the index) for NaN or ±Inf.
func (c Context) New(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, fmt.Errorf("%s: %w", opNew, ErrEmptyInput)
	}
	out := make([]decimal.Decimal, len(coords))
	for i, f := range coords {
		d, err := decimalFromFloat(f)
		if err != nil {
			return Vector{}, fmt.Errorf("%s: coordinate %d: %w", opNew, i, err)
		}
		out[i] = d
	}

	return c.build(out), nil
}

// FromStrings builds a Vector from decimal literals such as "-9.341" or "1e-3".
// Surrounding whitespace is ignored.
//
// Errors:
//   - ErrEmptyInput when no coordinates are given.
//   - ErrInvalidInput (wrapped with the index and literal) for unparsable text.
func (c Context) FromStrings(coords ...string) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, fmt.Errorf("%s: %w", opFromStrings, ErrEmptyInput)
	}
	out := make([]decimal.Decimal, len(coords))
	for i, s := range coords {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return Vector{}, fmt.Errorf("%s: coordinate %d %q: %w", opFromStrings, i, s, ErrInvalidInput)
		}
		out[i] = d
	}

	return c.build(out), nil
}

// FromDecimals builds a Vector from decimal values (copied, then rounded to
// context precision).
//
// Errors:
//   - ErrEmptyInput when no coordinates are given.
func (c Context) FromDecimals(coords ...decimal.Decimal) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, fmt.Errorf("%s: %w", opFromDecimals, ErrEmptyInput)
	}
	out := make([]decimal.Decimal, len(coords))
	copy(out, coords)

	return c.build(out), nil
}

// From builds a Vector from a dynamically typed sequence.
// Supported inputs: []float64, []float32, []int, []int64, []string,
// []decimal.Decimal, Vector, and []any whose elements are any of
// float64, float32, int, int32, int64, string or decimal.Decimal.
//
// Errors:
//   - ErrInvalidInput when values is not one of the sequences above (nil included),
//     or an element cannot be converted.
//   - ErrEmptyInput when the sequence is empty.
func (c Context) From(values any) (Vector, error) {
	switch vs := values.(type) {
	case []float64:
		return c.New(vs...)
	case []float32:
		fs := make([]float64, len(vs))
		for i, f := range vs {
			fs[i] = float64(f)
		}
		return c.New(fs...)
	case []int:
		ds := make([]decimal.Decimal, len(vs))
		for i, n := range vs {
			ds[i] = decimal.NewFromInt(int64(n))
		}
		return c.FromDecimals(ds...)
	case []int64:
		ds := make([]decimal.Decimal, len(vs))
		for i, n := range vs {
			ds[i] = decimal.NewFromInt(n)
		}
		return c.FromDecimals(ds...)
	case []string:
		return c.FromStrings(vs...)
	case []decimal.Decimal:
		return c.FromDecimals(vs...)
	case Vector:
		return c.FromDecimals(vs.coords...)
	case []any:
		if len(vs) == 0 {
			return Vector{}, fmt.Errorf("%s: %w", opFrom, ErrEmptyInput)
		}
		ds := make([]decimal.Decimal, len(vs))
		for i, el := range vs {
			d, err := decimalFromScalar(el)
			if err != nil {
				return Vector{}, fmt.Errorf("%s: coordinate %d (%T): %w", opFrom, i, el, err)
			}
			ds[i] = d
		}
		return c.FromDecimals(ds...)
	default:
		return Vector{}, fmt.Errorf("%s: %T is not a coordinate sequence: %w", opFrom, values, ErrInvalidInput)
	}
}

// build rounds coords in place to context precision and wraps them.
// coords must be owned by the caller (never an input slice).
func (c Context) build(coords []decimal.Decimal) Vector {
	ctx := c.resolved()
	for i := range coords {
		coords[i] = roundSig(coords[i], ctx.precision)
	}

	return Vector{coords: coords, ctx: ctx}
}

// decimalFromFloat rejects non-finite values before decimal.NewFromFloat,
// which panics on them.
func decimalFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, ErrInvalidInput
	}

	return decimal.NewFromFloat(f), nil
}

// decimalFromScalar converts one dynamically typed element.
func decimalFromScalar(x any) (decimal.Decimal, error) {
	switch v := x.(type) {
	case float64:
		return decimalFromFloat(v)
	case float32:
		return decimalFromFloat(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Decimal{}, ErrInvalidInput
		}
		return d, nil
	case decimal.Decimal:
		return v, nil
	default:
		return decimal.Decimal{}, ErrInvalidInput
	}
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int { return len(v.coords) }

// Context returns the precision context the vector was built under.
func (v Vector) Context() Context { return v.ctx }

// At returns coordinate i, or ErrIndexOutOfRange.
func (v Vector) At(i int) (decimal.Decimal, error) {
	if i < 0 || i >= len(v.coords) {
		return decimal.Decimal{}, fmt.Errorf("%s(%d) on dimension %d: %w", opAt, i, len(v.coords), ErrIndexOutOfRange)
	}

	return v.coords[i], nil
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.coords))
	copy(out, v.coords)

	return out
}

// Floats returns the coordinates converted to float64 (inexact).
func (v Vector) Floats() []float64 {
	out := make([]float64, len(v.coords))
	for i, d := range v.coords {
		out[i] = d.InexactFloat64()
	}

	return out
}

// Equal reports element-wise equality of the coordinates.
// Vectors of different dimension are never equal. Contexts are not compared:
// equal values are equal whatever precision produced them.
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if !v.coords[i].Equal(w.coords[i]) {
			return false
		}
	}

	return true
}

// String renders the vector as "Vector: (c1, c2, ...)".
// Coordinates print in plain decimal notation unless very large or very
// small, which switch to exponent form: 0.000123, -98800, 1.5E-7, 1E+25.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtPrefix)
	for i, d := range v.coords {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(formatCoordinate(d))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// formatCoordinate renders d in plain notation, or as <mantissa>E<exp> with
// trailing zeros dropped when the leading digit is outside the plain range.
func formatCoordinate(d decimal.Decimal) string {
	if d.IsZero() {
		return d.String()
	}
	exp := adjusted(d) - 1
	if exp >= _sciMinExp && exp <= _sciMaxExp {
		return d.String()
	}

	digits := strings.TrimRight(d.Abs().Coefficient().String(), "0")
	var sb strings.Builder
	if d.Sign() < 0 {
		sb.WriteByte('-')
	}
	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	fmt.Fprintf(&sb, "E%+d", exp)

	return sb.String()
}
