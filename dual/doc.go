// SPDX-License-Identifier: MIT
// Package dual implements forward-mode automatic differentiation with
// dual numbers.
//
// 🚀 What is a dual number?
//
//	A pair (re, du) that carries a value together with its first derivative
//	with respect to one designated input. Every operation propagates both
//	components with the chain rule, so evaluating f on Var(a) yields
//	(f(a), f'(a)) in a single pass:
//	  • no symbolic differentiation
//	  • no finite-difference step to tune
//	  • exact up to floating-point round-off
//
// ✨ Key features:
//   - generic over float32 / float64 (and named types built on them)
//   - arithmetic: Add, Sub, Mul, Div, Neg (+ scalar on either side)
//   - in-place updates: AddAssign, SubAssign, MulAssign, DivAssign
//   - elementary functions: Log, Exp, Sin, Cos, Abs, Pow
//   - value semantics: no allocation, safe to copy, safe across goroutines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dualnum/dual"
//
//	f := func(x dual.Number[float64]) dual.Number[float64] {
//	  return dual.Sin(dual.Pow(x, 3)) // sin(x³)
//	}
//	y := f(dual.Var(2.0))
//	fmt.Println(y.Real(), y.Dual()) // sin(8), 12·cos(8)
//
// Domain violations (division by zero, Log of a non-positive value, Abs at 0,
// Pow of a negative base with a fractional exponent) are not reported: they
// surface as ±Inf or NaN exactly as the equivalent float code would produce.
//
// Pow differentiates with respect to its base only; the exponent is a plain
// constant of type T.
package dual
