// SPDX-License-Identifier: MIT

// Package vector: precision context and functional options.
// This file defines:
//   - Context, the immutable numeric configuration every Vector carries,
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values).
//
// Design goals:
//   - No global state: the decimal precision is a value bound at construction,
//     never a package variable that can drift between operations.
//   - Comparable: two vectors may only be combined when their contexts are equal.
//
// Notes:
//   - shopspring/decimal keeps exact sums and products; the context rounds every
//     result to Precision significant digits so that all values built under one
//     context share one precision, whatever the operation history.
//   - decimal.DivisionPrecision (a package variable of the decimal library) is
//     never consulted: division always goes through DivRound with a scale
//     derived from the context.
package vector

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant decimal digits kept by
	// every arithmetic result.
	DefaultPrecision = 28

	// MaxPrecision bounds WithPrecision. Beyond it Newton square roots and
	// division scales stop being cheap for no practical gain.
	MaxPrecision = 1000

	// DefaultZeroTolerance is the magnitude below which IsZero reports true,
	// unless the Context sets another with WithZeroTolerance.
	DefaultZeroTolerance = 1e-10

	// DefaultOrthogonalTolerance is the |dot| below which IsOrthogonalTo reports true.
	DefaultOrthogonalTolerance = 1e-10

	// DefaultParallelTolerance is the angular distance (radians) from 0 or π
	// within which IsParallelTo reports true.
	DefaultParallelTolerance = 1e-4
)

const (
	panicPrecisionInvalid     = "vector: WithPrecision: digits must be in [1, MaxPrecision]"
	panicZeroToleranceInvalid = "vector: WithZeroTolerance: tolerance must be finite and >= 0"
)

// SqrtMode selects how Magnitude takes the square root of the decimal sum of squares.
//
//   - SqrtFloat   — convert the sum to float64 and use math.Sqrt. This is the
//     one place (with math.Acos in AngleWith) where exact decimal values cross
//     into binary floating point; the result carries ~16 significant digits.
//   - SqrtDecimal — Newton iteration in decimal at the context precision.
//     Slower, but Magnitude and Normalized then keep full context precision.
type SqrtMode uint8

const (
	// SqrtFloat takes the square root with math.Sqrt (default).
	SqrtFloat SqrtMode = iota

	// SqrtDecimal takes the square root by decimal Newton iteration.
	SqrtDecimal
)

// String implements fmt.Stringer.
func (m SqrtMode) String() string {
	switch m {
	case SqrtFloat:
		return "float"
	case SqrtDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("SqrtMode(%d)", uint8(m))
	}
}

// Context is the immutable numeric configuration of a Vector.
// Build it once with NewContext and construct vectors through its methods.
// The zero Context behaves as DefaultContext().
type Context struct {
	precision int      // significant digits, in [1, MaxPrecision]; 0 means default
	sqrtMode  SqrtMode // square-root strategy for Magnitude
	zeroTol   float64  // magnitude below which a vector counts as zero
}

// Option configures a Context under construction.
type Option func(*Context)

// defaultContext is never modified after package initialisation.
var defaultContext = NewContext()

// DefaultContext returns the context used by the package-level constructors:
// DefaultPrecision significant digits, SqrtFloat and DefaultZeroTolerance.
func DefaultContext() Context { return defaultContext }

// NewContext builds a Context from defaults and the given options, applied in order
// (last writer wins).
func NewContext(opts ...Option) Context {
	c := Context{precision: DefaultPrecision, sqrtMode: SqrtFloat, zeroTol: DefaultZeroTolerance}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithPrecision sets the number of significant digits retained by arithmetic.
// Panics when digits is outside [1, MaxPrecision] (programmer error).
//
// Lower precision makes the clamp in AngleWith fire more often on parallel
// inputs and loses fidelity everywhere else; the default suits most uses.
func WithPrecision(digits int) Option {
	if digits < 1 || digits > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(c *Context) { c.precision = digits }
}

// WithDecimalSqrt makes Magnitude use decimal Newton iteration.
func WithDecimalSqrt() Option {
	return func(c *Context) { c.sqrtMode = SqrtDecimal }
}

// WithFloatSqrt makes Magnitude use math.Sqrt (default).
func WithFloatSqrt() Option {
	return func(c *Context) { c.sqrtMode = SqrtFloat }
}

// WithZeroTolerance sets the magnitude below which IsZero reports true and
// IsParallelTo/IsParallelWithin treat an operand as the zero vector.
// Panics when tol is NaN, ±Inf or negative (programmer error).
func WithZeroTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicZeroToleranceInvalid)
	}

	return func(c *Context) { c.zeroTol = tol }
}

// Precision returns the number of significant digits retained by arithmetic.
func (c Context) Precision() int { return c.resolved().precision }

// SqrtMode returns the square-root strategy.
func (c Context) SqrtMode() SqrtMode { return c.sqrtMode }

// ZeroTolerance returns the magnitude below which a vector counts as zero.
func (c Context) ZeroTolerance() float64 { return c.resolved().zeroTol }

// String implements fmt.Stringer.
func (c Context) String() string {
	r := c.resolved()

	return fmt.Sprintf("Context(precision=%d, sqrt=%s, zero=%g)", r.precision, r.sqrtMode, r.zeroTol)
}

// resolved maps the zero Context onto the default precision so that
// Context{} and DefaultContext() build interchangeable vectors.
func (c Context) resolved() Context {
	if c.precision == 0 {
		c.precision = DefaultPrecision
		c.zeroTol = DefaultZeroTolerance
	}

	return c
}
