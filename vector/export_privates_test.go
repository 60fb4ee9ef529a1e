// SPDX-License-Identifier: MIT

package vector

// Test-Bridge (White-Box) for private precision helpers.
//
// Purpose:
//   - Expose unexported rounding/division/sqrt/clamp helpers to vector_test ONLY.
//   - The file ends in _test.go, so it never compiles into production builds.

var (
	RoundSig_TestOnly    = roundSig
	Div_TestOnly         = div
	SqrtDecimal_TestOnly = sqrtDecimal
	SqrtFloat_TestOnly   = sqrtFloat
	ClampUnit_TestOnly   = clampUnit
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPrecisionInvalid_TestOnly     = panicPrecisionInvalid
	PanicZeroToleranceInvalid_TestOnly = panicZeroToleranceInvalid
)
