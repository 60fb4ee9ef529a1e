// SPDX-License-Identifier: MIT
package vector_test

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecgeom/vector"
)

// mustVec builds a default-context vector or fails the test.
func mustVec(t testing.TB, coords ...float64) vector.Vector {
	t.Helper()
	v, err := vector.New(coords...)
	require.NoError(t, err)

	return v
}

// assertCoords compares coordinates within delta.
func assertCoords(t *testing.T, want []float64, got vector.Vector, delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Dimension(), "dimension")
	assert.InDeltaSlice(t, want, got.Floats(), delta)
}

// TestNew_Errors verifies constructor failures across every entry point.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func() (vector.Vector, error)
		err   error
	}{
		{"EmptyFloats", func() (vector.Vector, error) { return vector.New() }, vector.ErrEmptyInput},
		{"EmptyStrings", func() (vector.Vector, error) { return vector.FromStrings() }, vector.ErrEmptyInput},
		{"EmptyDecimals", func() (vector.Vector, error) { return vector.FromDecimals() }, vector.ErrEmptyInput},
		{"EmptyAny", func() (vector.Vector, error) { return vector.From([]any{}) }, vector.ErrEmptyInput},
		{"EmptyInts", func() (vector.Vector, error) { return vector.From([]int{}) }, vector.ErrEmptyInput},
		{"NaN", func() (vector.Vector, error) { return vector.New(1, math.NaN()) }, vector.ErrInvalidInput},
		{"Inf", func() (vector.Vector, error) { return vector.New(math.Inf(-1)) }, vector.ErrInvalidInput},
		{"BadString", func() (vector.Vector, error) { return vector.FromStrings("1", "x") }, vector.ErrInvalidInput},
		{"NotSequence", func() (vector.Vector, error) { return vector.From(42) }, vector.ErrInvalidInput},
		{"Nil", func() (vector.Vector, error) { return vector.From(nil) }, vector.ErrInvalidInput},
		{"BadAnyElement", func() (vector.Vector, error) { return vector.From([]any{1, true}) }, vector.ErrInvalidInput},
		{"BadAnyString", func() (vector.Vector, error) { return vector.From([]any{"1", "one"}) }, vector.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.build()
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, 0, v.Dimension(), "failed construction must not yield a vector")
		})
	}
}

// TestNew_EmptyNamesOperation checks that empty-input errors say which
// constructor failed.
func TestNew_EmptyNamesOperation(t *testing.T) {
	_, err := vector.New()
	require.ErrorIs(t, err, vector.ErrEmptyInput)
	assert.EqualError(t, err, "New: vector: the coordinates must be nonempty")

	_, err = vector.FromStrings()
	assert.EqualError(t, err, "FromStrings: vector: the coordinates must be nonempty")

	_, err = vector.From([]any{})
	assert.EqualError(t, err, "From: vector: the coordinates must be nonempty")
}

// TestString_ExponentForm checks very small and very large coordinates print
// with an exponent instead of long runs of zeros.
func TestString_ExponentForm(t *testing.T) {
	cases := []struct {
		name   string
		coords []string
		want   string
	}{
		{"Tiny", []string{"7.07e-301", "1"}, "Vector: (7.07E-301, 1)"},
		{"NegativeTiny", []string{"-1.5e-7"}, "Vector: (-1.5E-7)"},
		{"Huge", []string{"1e25", "-2.5e30"}, "Vector: (1E+25, -2.5E+30)"},
		{"PlainLowerEdge", []string{"0.000001"}, "Vector: (0.000001)"},
		{"PlainUpperEdge", []string{"1e20"}, "Vector: (100000000000000000000)"},
		{"Zero", []string{"0", "0.000"}, "Vector: (0, 0)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vector.FromStrings(tc.coords...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.String())
		})
	}
}

// TestNew_Succeeds checks the basic constructor contract.
func TestNew_Succeeds(t *testing.T) {
	v := mustVec(t, 1, 2, 3)
	assert.Equal(t, 3, v.Dimension())
	assert.Equal(t, "Vector: (1, 2, 3)", v.String())
	assert.Equal(t, vector.DefaultContext(), v.Context())
}

// TestNew_ShortestDecimal ensures float inputs keep their literal decimal value.
func TestNew_ShortestDecimal(t *testing.T) {
	v := mustVec(t, 8.218, -9.341)
	c0, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, "8.218", c0.String())
	c1, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, "-9.341", c1.String())
}

// TestNew_ErrorMentionsIndex checks that coercion errors name the coordinate.
func TestNew_ErrorMentionsIndex(t *testing.T) {
	_, err := vector.New(1, 2, math.NaN())
	require.ErrorIs(t, err, vector.ErrInvalidInput)
	assert.Contains(t, err.Error(), "coordinate 2")

	_, err = vector.FromStrings("1", "abc")
	require.ErrorIs(t, err, vector.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"abc"`)
}

// TestFrom_SupportedSequences verifies every accepted input shape.
func TestFrom_SupportedSequences(t *testing.T) {
	want := []float64{1, 2, 3}
	inputs := map[string]any{
		"float64":  []float64{1, 2, 3},
		"float32":  []float32{1, 2, 3},
		"int":      []int{1, 2, 3},
		"int64":    []int64{1, 2, 3},
		"string":   []string{"1", " 2 ", "3.0"},
		"decimal":  []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3)},
		"vector":   mustVec(t, 1, 2, 3),
		"anyMixed": []any{1, int64(2), "3"},
		"anyFloat": []any{float32(1), 2.0, decimal.NewFromInt(3)},
		"anyInt32": []any{int32(1), int32(2), int32(3)},
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			v, err := vector.From(in)
			require.NoError(t, err)
			assertCoords(t, want, v, 0)
		})
	}
}

// TestConstruction_RoundsToContext ensures inputs are coerced to context precision.
func TestConstruction_RoundsToContext(t *testing.T) {
	ctx := vector.NewContext(vector.WithPrecision(3))
	v, err := ctx.FromStrings("1.23456", "-98765", "0.000123456")
	require.NoError(t, err)
	assert.Equal(t, "Vector: (1.23, -98800, 0.000123)", v.String())
	assert.Equal(t, ctx, v.Context())
}

// TestImmutability verifies callers cannot reach the backing storage.
func TestImmutability(t *testing.T) {
	in := []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(2)}
	v, err := vector.FromDecimals(in...)
	require.NoError(t, err)

	in[0] = decimal.NewFromInt(100) // mutate the caller's slice
	cs := v.Coordinates()
	cs[1] = decimal.NewFromInt(200) // mutate the returned copy

	assert.Equal(t, "Vector: (1, 2)", v.String())

	w := mustVec(t, 5, 5)
	_, err = v.Plus(w)
	require.NoError(t, err)
	assert.Equal(t, "Vector: (1, 2)", v.String(), "operations must not mutate the receiver")
}

// TestAt_OutOfRange covers index validation.
func TestAt_OutOfRange(t *testing.T) {
	v := mustVec(t, 1, 2)
	for _, i := range []int{-1, 2, 100} {
		_, err := v.At(i)
		assert.ErrorIs(t, err, vector.ErrIndexOutOfRange, "At(%d)", i)
	}
}

// TestEqual covers element-wise equality, including dimension differences.
func TestEqual(t *testing.T) {
	a := mustVec(t, 1, 2, 3)
	assert.True(t, a.Equal(mustVec(t, 1, 2, 3)))
	assert.True(t, a.Equal(mustVec(t, 1.0, 2.00, 3.000)))
	assert.False(t, a.Equal(mustVec(t, 1, 2, 4)))
	assert.False(t, a.Equal(mustVec(t, 1, 2)), "prefix must not compare equal")
	assert.False(t, mustVec(t, 1, 2).Equal(a))

	// Equal values under different contexts are still equal values.
	b, err := vector.NewContext(vector.WithPrecision(5)).New(1, 2, 3)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

// TestErrorKinds documents how the zero-vector sentinels relate.
func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, vector.ErrNormalizeZero, vector.ErrZeroVector)
	assert.ErrorIs(t, vector.ErrAngleWithZero, vector.ErrZeroVector)
	assert.False(t, errors.Is(vector.ErrNormalizeZero, vector.ErrAngleWithZero))
	assert.False(t, errors.Is(vector.ErrAngleWithZero, vector.ErrNormalizeZero))
	assert.Equal(t, "vector: cannot normalize a zero vector", vector.ErrNormalizeZero.Error())
	assert.Equal(t, "vector: cannot compute an angle with the zero vector", vector.ErrAngleWithZero.Error())
}

func nan() float64 { return math.NaN() }
