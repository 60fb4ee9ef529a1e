// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for operand and argument checks shared by the
//     binary operations and predicates.
//   - Return sentinels wrapped with the failing operation and the offending
//     values, so errors.Is keeps working and messages stay diagnosable.
//
// Note:
//   - Composite checks run in a fixed order: dimension, then context.

package vector

import (
	"fmt"
	"math"
)

// validateOperands ensures v and w can be combined element-wise.
// Errors: ErrDimensionMismatch, ErrContextMismatch (wrapped with op).
func validateOperands(op string, v, w Vector) error {
	if len(v.coords) != len(w.coords) {
		return fmt.Errorf("%s: dimensions %d and %d: %w", op, len(v.coords), len(w.coords), ErrDimensionMismatch)
	}
	if v.ctx != w.ctx {
		return fmt.Errorf("%s: %v and %v: %w", op, v.ctx, w.ctx, ErrContextMismatch)
	}

	return nil
}

// validateTolerance ensures tol is finite and non-negative.
func validateTolerance(op string, tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("%s: tolerance %v: %w", op, tol, ErrInvalidTolerance)
	}

	return nil
}
