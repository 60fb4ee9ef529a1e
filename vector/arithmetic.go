// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Element-wise arithmetic (Plus, Minus, Neg), scalar scaling and the dot product.
//   - Every result is a new Vector rounded to the operands' context precision;
//     receivers are never modified.
//
// Complexity:
//   - All operations are O(n) time and O(n) space (Dot: O(1) space).

package vector

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Operation name constants for unified error wrapping.
const (
	opPlus        = "Plus"
	opMinus       = "Minus"
	opTimesScalar = "TimesScalar"
	opDot         = "Dot"
)

// Plus returns v + w.
// Errors: ErrDimensionMismatch, ErrContextMismatch.
func (v Vector) Plus(w Vector) (Vector, error) {
	if err := validateOperands(opPlus, v, w); err != nil {
		return Vector{}, err
	}

	return v.zipWith(w, decimal.Decimal.Add), nil
}

// Minus returns v - w.
// Errors: ErrDimensionMismatch, ErrContextMismatch.
func (v Vector) Minus(w Vector) (Vector, error) {
	if err := validateOperands(opMinus, v, w); err != nil {
		return Vector{}, err
	}

	return v.zipWith(w, decimal.Decimal.Sub), nil
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	out := make([]decimal.Decimal, len(v.coords))
	for i, d := range v.coords {
		out[i] = d.Neg()
	}

	return Vector{coords: out, ctx: v.ctx}
}

// TimesScalar returns c·v. The scalar is coerced to decimal first so that the
// product never mixes float and decimal arithmetic.
// Errors: ErrInvalidInput for NaN or ±Inf.
func (v Vector) TimesScalar(c float64) (Vector, error) {
	s, err := decimalFromFloat(c)
	if err != nil {
		return Vector{}, fmt.Errorf("%s: scalar %v: %w", opTimesScalar, c, err)
	}

	return v.Scale(s), nil
}

// Scale returns s·v for a decimal scalar.
func (v Vector) Scale(s decimal.Decimal) Vector {
	prec := v.ctx.resolved().precision
	out := make([]decimal.Decimal, len(v.coords))
	for i, d := range v.coords {
		out[i] = roundSig(d.Mul(s), prec)
	}

	return Vector{coords: out, ctx: v.ctx}
}

// Dot returns Σ vᵢ·wᵢ rounded to context precision. Each product is rounded
// before summation, as a precision-bounded decimal context would do.
// Errors: ErrDimensionMismatch, ErrContextMismatch.
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := validateOperands(opDot, v, w); err != nil {
		return decimal.Decimal{}, err
	}

	return v.dot(w), nil
}

// dot assumes validated operands.
func (v Vector) dot(w Vector) decimal.Decimal {
	prec := v.ctx.resolved().precision
	sum := decimal.Zero
	for i := range v.coords {
		sum = roundSig(sum.Add(roundSig(v.coords[i].Mul(w.coords[i]), prec)), prec)
	}

	return sum
}

// zipWith applies f pairwise. Assumes validated operands.
func (v Vector) zipWith(w Vector, f func(a, b decimal.Decimal) decimal.Decimal) Vector {
	prec := v.ctx.resolved().precision
	out := make([]decimal.Decimal, len(v.coords))
	for i := range v.coords {
		out[i] = roundSig(f(v.coords[i], w.coords[i]), prec)
	}

	return Vector{coords: out, ctx: v.ctx}
}
