// Package vecgeom is a small Euclidean-geometry toolkit built on exact
// decimal arithmetic: n-dimensional vectors, their lengths and angles, and
// the orthogonality and parallelism tests that depend on them.
//
// 🚀 What is vecgeom?
//
//	A value library plus a thin command-line driver:
//		• Vectors: immutable, never empty, decimal coordinates
//		• Arithmetic: plus, minus, negation, scalar product, dot product
//		• Geometry: magnitude, normalization, angle in radians or degrees
//		• Predicates: zero, orthogonal, parallel with explicit tolerances
//		• Precision: an immutable Context fixing significant digits per result
//
// ✨ Why choose vecgeom?
//
//   - Exact sums and products – no binary floating-point drift
//   - Explicit errors – dimension mismatch and zero vectors are sentinel errors
//   - No global state – precision travels with each value
//
// Under the hood, everything is organized under these packages:
//
//	vector/          — the Vector value type, Context and every operation
//	internal/config/ — YAML, .env and VECGEOM_* environment resolution
//	cmd/vecgeom/     — cobra CLI exercising each operation
//	examples/        — runnable scenario programs
//
// Quick ASCII example:
//
//	      b
//	     ↗
//	    θ
//	  a ──→
//
//	cos θ = â·b̂, clamped to [-1, 1] before acos.
//
//	go get github.com/katalvlaran/vecgeom/vector
package vecgeom
