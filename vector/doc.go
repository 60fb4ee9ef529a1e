// Package vector implements an immutable n-dimensional Euclidean vector with
// decimal coordinates.
//
// 🚀 What is a Vector here?
//
//	An ordered, non-empty tuple of github.com/shopspring/decimal values that
//	represents a point or a direction. Inputs are coerced to decimal once, at
//	construction, so sums, differences, scalings and dot products are computed
//	on exact decimal values instead of binary floating point.
//
// ✨ Key features:
//   - Arithmetic: Plus, Minus, Neg, TimesScalar, Scale, Dot
//   - Geometry: Magnitude, Normalized, AngleWith (radians or degrees)
//   - Predicates: IsZero, IsOrthogonalTo, IsParallelTo (+ ...Within variants)
//   - Explicit precision: a Context fixes the significant digits of every result
//   - Strict operands: differing dimensions fail with ErrDimensionMismatch,
//     never silently truncate
//
// ⚙️ Usage:
//
//	ctx := vector.NewContext(vector.WithPrecision(30))
//	a, _ := ctx.New(3.183, -7.627)
//	b, _ := ctx.New(-2.668, 5.319)
//	rad, err := a.AngleWith(b, vector.Radians) // ≈ 3.072
//
// Precision model:
//
//	Every Vector carries the Context it was built under. Results are rounded
//	to Context.Precision() significant digits (default 28, half to even). The
//	Context also fixes the zero tolerance used by IsZero and IsParallelTo. Two vectors built
//	under different contexts cannot be combined (ErrContextMismatch), so values
//	of mixed precision never meet. There is no package-level setting to mutate.
//
//	math.Sqrt (default SqrtMode) and math.Acos work in float64: Magnitude and
//	AngleWith are accurate to ~1e-16 relative, not to context precision.
//	WithDecimalSqrt keeps Magnitude and Normalized fully decimal.
//
// Errors:
//
//	ErrEmptyInput, ErrInvalidInput            — construction
//	ErrDimensionMismatch, ErrContextMismatch  — binary operations
//	ErrNormalizeZero, ErrAngleWithZero        — zero vector (both match ErrZeroVector)
//	ErrInvalidTolerance, ErrIndexOutOfRange   — arguments
//
// Vector and Context are plain immutable values and are safe for concurrent use.
package vector
