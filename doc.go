// Package dualnum is a small forward-mode automatic differentiation toolkit
// built on dual numbers: evaluate a function once and get both its value and
// its exact first derivative.
//
// 🚀 What is dualnum?
//
//	A pure-Go, generic library that brings together:
//		• Dual numbers: value + tangent pairs with the full operator algebra
//		• Elementary functions: log, exp, sin, cos, abs, pow (constant exponent)
//		• Finite differences: central / forward / backward estimates
//		• Cross-checks: sampled comparison of dual, closed-form and numeric derivatives
//
// ✨ Why choose dualnum?
//
//   - Exact derivatives – no step size to tune, no symbolic engine
//   - Zero allocation – values are plain structs, safe to copy and share
//   - Generic – float32, float64 and named float types
//   - IEEE semantics – domain errors surface as ±Inf / NaN, never panics
//
// Packages:
//
//	dual/     — Number[T], arithmetic, Log/Exp/Sin/Cos/Abs/Pow
//	numdiff/  — finite-difference estimates over dual functions (real part only)
//	check/    — deterministic sampling driver comparing the three derivatives
//	cmd/dualnum — command-line demonstration
//
// Quick example:
//
//	f := func(x dual.Number[float64]) dual.Number[float64] {
//		return x.Mul(x.AddScalar(1)) // x·(x+1)
//	}
//	v, d := dual.Derive(f, 3.0) // 12, 7
//
//	go get github.com/katalvlaran/dualnum
package dualnum
