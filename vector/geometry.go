// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Magnitude, normalization, angle and the zero/orthogonal/parallel predicates.
//
// Precision boundary:
//   - Squares, sums, division and dot products are decimal at context precision.
//   - math.Sqrt (SqrtFloat mode only) and math.Acos are float64. The angle is
//     therefore accurate to float64, never better, whatever the context precision.
//   - The acos argument is clamped to [-1, 1] first: rounding during normalization
//     can leave the dot product of two parallel unit vectors marginally outside
//     the domain (e.g. -1.0000000000000000000000000001), where acos returns NaN.

package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Operation name constants for unified error wrapping.
const (
	opNormalized     = "Normalized"
	opAngleWith      = "AngleWith"
	opIsZero         = "IsZeroWithin"
	opIsOrthogonalTo = "IsOrthogonalWithin"
	opIsParallelTo   = "IsParallelWithin"
)

// AngleUnit selects the unit AngleWith reports in.
type AngleUnit uint8

const (
	// Radians reports the angle in [0, π].
	Radians AngleUnit = iota

	// Degrees reports the angle in [0, 180].
	Degrees
)

// String implements fmt.Stringer.
func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "rad"
	case Degrees:
		return "deg"
	default:
		return fmt.Sprintf("AngleUnit(%d)", uint8(u))
	}
}

// fromRadians converts rad into u.
func (u AngleUnit) fromRadians(rad float64) float64 {
	if u == Degrees {
		return rad * 180 / math.Pi
	}

	return rad
}

// Magnitude returns the Euclidean norm √(Σ vᵢ²).
// The sum of squares is decimal; the square root follows the context SqrtMode.
func (v Vector) Magnitude() decimal.Decimal {
	ctx := v.ctx.resolved()
	sumSq := v.dot(v)
	if ctx.sqrtMode == SqrtDecimal {
		return sqrtDecimal(sumSq, ctx.precision)
	}

	return sqrtFloat(sumSq, ctx.precision)
}

// Normalized returns the unit vector v/|v|.
// Errors: ErrNormalizeZero when the magnitude is zero.
func (v Vector) Normalized() (Vector, error) {
	mag := v.Magnitude()
	if mag.IsZero() {
		return Vector{}, fmt.Errorf("%s: %w", opNormalized, ErrNormalizeZero)
	}

	return v.Scale(div(decimal.NewFromInt(1), mag, v.ctx.resolved().precision)), nil
}

// AngleWith returns the angle between v and w in the requested unit:
// acos(clamp(v̂·ŵ, -1, 1)).
//
// Errors:
//   - ErrDimensionMismatch, ErrContextMismatch (wrapped).
//   - ErrAngleWithZero when either operand is the zero vector; it also
//     matches errors.Is(err, ErrZeroVector).
func (v Vector) AngleWith(w Vector, unit AngleUnit) (float64, error) {
	if err := validateOperands(opAngleWith, v, w); err != nil {
		return 0, err
	}
	rad, err := v.angle(w)
	if err != nil {
		return 0, err
	}

	return unit.fromRadians(rad), nil
}

// angle returns the radian angle. Assumes validated operands.
func (v Vector) angle(w Vector) (float64, error) {
	u1, err := v.Normalized()
	if err != nil {
		return 0, angleError(err)
	}
	u2, err := w.Normalized()
	if err != nil {
		return 0, angleError(err)
	}
	cos := clampUnit(u1.dot(u2))

	return math.Acos(cos.InexactFloat64()), nil
}

// angleError replaces a normalization failure with the angle-specific variant.
func angleError(err error) error {
	if errors.Is(err, ErrNormalizeZero) {
		return fmt.Errorf("%s: %w", opAngleWith, ErrAngleWithZero)
	}

	return fmt.Errorf("%s: %w", opAngleWith, err)
}

// IsZero reports whether |v| is below the zero tolerance of v's Context
// (DefaultZeroTolerance unless set with WithZeroTolerance).
func (v Vector) IsZero() bool {
	return v.isZero(v.ctx.ZeroTolerance())
}

// IsZeroWithin reports whether |v| < tol.
// Errors: ErrInvalidTolerance.
func (v Vector) IsZeroWithin(tol float64) (bool, error) {
	if err := validateTolerance(opIsZero, tol); err != nil {
		return false, err
	}

	return v.isZero(tol), nil
}

// isZero treats an exact zero magnitude as zero even when tol is 0.
func (v Vector) isZero(tol float64) bool {
	mag := v.Magnitude()

	return mag.IsZero() || mag.LessThan(decimal.NewFromFloat(tol))
}

// IsOrthogonalTo reports whether |v·w| < DefaultOrthogonalTolerance.
// Errors: ErrDimensionMismatch, ErrContextMismatch.
func (v Vector) IsOrthogonalTo(w Vector) (bool, error) {
	return v.IsOrthogonalWithin(w, DefaultOrthogonalTolerance)
}

// IsOrthogonalWithin reports whether |v·w| < tol.
// The zero vector is orthogonal to every vector.
// Errors: ErrInvalidTolerance, ErrDimensionMismatch, ErrContextMismatch.
func (v Vector) IsOrthogonalWithin(w Vector, tol float64) (bool, error) {
	if err := validateTolerance(opIsOrthogonalTo, tol); err != nil {
		return false, err
	}
	if err := validateOperands(opIsOrthogonalTo, v, w); err != nil {
		return false, err
	}

	return v.dot(w).Abs().LessThan(decimal.NewFromFloat(tol)), nil
}

// IsParallelTo reports whether v and w are parallel within DefaultParallelTolerance.
// Errors: ErrDimensionMismatch, ErrContextMismatch.
func (v Vector) IsParallelTo(w Vector) (bool, error) {
	return v.IsParallelWithin(w, DefaultParallelTolerance)
}

// IsParallelWithin reports whether v and w are parallel: either is zero (by
// convention the zero vector is parallel to everything), or their angle is
// within tol radians of 0 (same direction) or of π (opposite direction).
// "Zero" is judged with the Context zero tolerance, the same one IsZero uses.
// Errors: ErrInvalidTolerance, ErrDimensionMismatch, ErrContextMismatch.
func (v Vector) IsParallelWithin(w Vector, tol float64) (bool, error) {
	if err := validateTolerance(opIsParallelTo, tol); err != nil {
		return false, err
	}
	if err := validateOperands(opIsParallelTo, v, w); err != nil {
		return false, err
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	rad, err := v.angle(w)
	if err != nil {
		// Unreachable while both magnitudes are nonzero.
		return false, fmt.Errorf("%s: %w", opIsParallelTo, err)
	}

	return rad < tol || math.Pi-rad < tol, nil
}
