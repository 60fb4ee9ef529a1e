// Package vector_test provides benchmarks for the decimal vector operations,
// using deterministic coordinates.
package vector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/vecgeom/vector"
)

// benchDims are the dimensions to benchmark. Decimal arithmetic is not built
// for bulk throughput; these stay small.
var benchDims = []int{3, 16, 128}

// sinks to defeat dead-code elimination
var (
	sinkV vector.Vector
	sinkD decimal.Decimal
	sinkF float64
	sinkB bool
)

func randVec(b *testing.B, ctx vector.Context, n int, seed int64) vector.Vector {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	cs := make([]float64, n)
	for i := range cs {
		cs[i] = rng.Float64()*200 - 100
	}
	v, err := ctx.New(cs...)
	if err != nil {
		b.Fatal(err)
	}

	return v
}

func BenchmarkPlus(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randVec(b, vector.DefaultContext(), n, 1)
			y := randVec(b, vector.DefaultContext(), n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := x.Plus(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randVec(b, vector.DefaultContext(), n, 3)
			y := randVec(b, vector.DefaultContext(), n, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := x.Dot(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkMagnitude(b *testing.B) {
	modes := map[string]vector.Context{
		"float":   vector.DefaultContext(),
		"decimal": vector.NewContext(vector.WithDecimalSqrt()),
	}
	for name, ctx := range modes {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			x := randVec(b, ctx, 16, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkD = x.Magnitude()
			}
		})
	}
}

func BenchmarkAngleWith(b *testing.B) {
	b.ReportAllocs()
	x := randVec(b, vector.DefaultContext(), 16, 6)
	y := randVec(b, vector.DefaultContext(), 16, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := x.AngleWith(y, vector.Radians)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = a
	}
}

func BenchmarkIsParallelTo(b *testing.B) {
	b.ReportAllocs()
	x := randVec(b, vector.DefaultContext(), 16, 8)
	y := x.Neg()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := x.IsParallelTo(y)
		if err != nil {
			b.Fatal(err)
		}
		sinkB = p
	}
}
