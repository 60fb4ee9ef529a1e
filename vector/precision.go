// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Apply a Context's significant-digit precision on top of shopspring/decimal,
//     which itself only knows exact arithmetic and fixed-scale rounding.
//   - Provide the decimal square root used by SqrtDecimal and as the fallback
//     when a sum of squares overflows float64.
//
// All helpers are pure and deterministic.

package vector

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// guardDigits are extra digits carried by division and Newton steps before
	// the final rounding to context precision.
	guardDigits = 4

	// maxNewtonSteps caps decimal square-root iterations. Convergence is
	// quadratic from a power-of-ten seed, so this is never reached in practice.
	maxNewtonSteps = 200
)

var half = decimal.New(5, -1)

// adjusted returns the decimal exponent of the most significant digit plus one,
// i.e. the number of digits left of the point for |d| >= 1.
// Assumes d is not zero.
func adjusted(d decimal.Decimal) int {
	return d.NumDigits() + int(d.Exponent())
}

// roundSig rounds d to prec significant digits, half to even.
func roundSig(d decimal.Decimal, prec int) decimal.Decimal {
	if d.IsZero() || d.NumDigits() <= prec {
		return d
	}

	return d.RoundBank(int32(prec - adjusted(d)))
}

// div returns a/b rounded to prec significant digits. b must not be zero.
func div(a, b decimal.Decimal, prec int) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	// The quotient's leading digit sits at most one place above adjA-adjB.
	places := prec - (adjusted(a) - adjusted(b)) + guardDigits

	return roundSig(a.DivRound(b, int32(places)), prec)
}

// sqrtDecimal returns √s rounded to prec significant digits. s must be >= 0.
// Implementation:
//   - Stage 1: seed with 10^ceil(adj/2), within a factor ~3 of the root.
//   - Stage 2: Newton steps x ← (x + s/x)/2 at prec+guardDigits until a fixed point
//     (or a two-cycle in the guard digits).
//   - Stage 3: round to prec.
func sqrtDecimal(s decimal.Decimal, prec int) decimal.Decimal {
	if s.Sign() <= 0 {
		return decimal.Zero
	}
	work := prec + guardDigits

	adj := adjusted(s)
	x := decimal.New(1, int32((adj+1)/2))
	prev := x
	for i := 0; i < maxNewtonSteps; i++ {
		next := roundSig(x.Add(div(s, x, work)).Mul(half), work)
		// Fixed point, or a two-cycle in the last guard digit.
		if next.Equal(x) || next.Equal(prev) {
			x = next
			break
		}
		prev, x = x, next
	}

	return roundSig(x, prec)
}

// sqrtFloat returns √s through math.Sqrt, converted back to decimal.
// When s is outside float64 range the decimal path is used instead of
// passing ±Inf to decimal.NewFromFloat (which panics on it).
func sqrtFloat(s decimal.Decimal, prec int) decimal.Decimal {
	if s.Sign() <= 0 {
		return decimal.Zero
	}
	f := math.Sqrt(s.InexactFloat64())
	if math.IsInf(f, 0) || math.IsNaN(f) || f == 0 {
		return sqrtDecimal(s, prec)
	}

	return roundSig(decimal.NewFromFloat(f), prec)
}

// clampUnit restricts d to [-1, 1].
// Normalized vectors are rounded coordinate by coordinate, so the dot product
// of two parallel unit vectors can land a few ulps outside the acos domain.
func clampUnit(d decimal.Decimal) decimal.Decimal {
	if d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	if d.LessThan(decimal.NewFromInt(-1)) {
		return decimal.NewFromInt(-1)
	}

	return d
}
