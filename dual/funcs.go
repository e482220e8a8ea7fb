// SPDX-License-Identifier: MIT
// Package: dual
//
// funcs.go — elementary functions over Number.
//
// Each function applies g to the value and g'(a)·a' to the derivative, so
// nesting them composes the chain rule level by level. Scalars are evaluated
// in float64 through package math and converted back to T.

package dual

import "math"

// Exp returns (eᵃ, eᵃ·a').
func Exp[T Float](x Number[T]) Number[T] {
	e := T(math.Exp(float64(x.re)))
	return Number[T]{re: e, du: e * x.du}
}

// Log returns (ln a, a'/a). For a = 0 the value is −Inf; for a < 0 it is NaN.
func Log[T Float](x Number[T]) Number[T] {
	return Number[T]{
		re: T(math.Log(float64(x.re))),
		du: x.du / x.re,
	}
}

// Sin returns (sin a, cos a·a').
func Sin[T Float](x Number[T]) Number[T] {
	s, c := math.Sincos(float64(x.re))
	return Number[T]{re: T(s), du: T(c) * x.du}
}

// Cos returns (cos a, −sin a·a').
func Cos[T Float](x Number[T]) Number[T] {
	s, c := math.Sincos(float64(x.re))
	return Number[T]{re: T(c), du: -T(s) * x.du}
}

// Abs returns (|a|, sign(a)·a').
//
// sign is 1 for a > 0, −1 for a < 0 and NaN at 0 (and for NaN), so a seeded
// variable at 0 has no derivative. A constant (a' = 0) stays a constant,
// including |0|.
func Abs[T Float](x Number[T]) Number[T] {
	m := T(math.Abs(float64(x.re)))
	if x.du == 0 {
		return Number[T]{re: m}
	}
	return Number[T]{re: m, du: sign(x.re) * x.du}
}

// sign returns 1, −1, or NaN for 0 and NaN.
func sign[T Float](a T) T {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return T(math.NaN())
	}
}

// Pow returns (aⁿ, n·aⁿ⁻¹·a') for a constant exponent n.
//
// The exponent carries no derivative. Real-power semantics follow math.Pow:
// a negative base with a non-integer n yields NaN. n = 0 is the constant 1
// as long as a' is finite; a NaN or ±Inf tangent still propagates as NaN.
func Pow[T Float](x Number[T], n T) Number[T] {
	d := float64(x.du)
	if n == 0 && !math.IsNaN(d) && !math.IsInf(d, 0) {
		return Const(T(1))
	}
	a, p := float64(x.re), float64(n)
	return Number[T]{
		re: T(math.Pow(a, p)),
		du: n * T(math.Pow(a, p-1)) * x.du,
	}
}
