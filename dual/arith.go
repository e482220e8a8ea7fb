// SPDX-License-Identifier: MIT
// Package: dual
//
// arith.go — the four arithmetic operators and negation.
//
// Contract:
//   - Every operator is pure: operands are passed by value and never mutated.
//   - Scalars on either side are lifted with Const (derivative 0), so
//     x.MulScalar(c) and ScalarMul(c, x) are bitwise identical.
//   - No domain checks: x/0 yields ±Inf or NaN in both components.
//   - *Assign methods are the only mutating surface and touch the receiver only.

package dual

// Add returns (a + b, a' + b').
func (x Number[T]) Add(y Number[T]) Number[T] {
	return Number[T]{re: x.re + y.re, du: x.du + y.du}
}

// Sub returns (a − b, a' − b').
func (x Number[T]) Sub(y Number[T]) Number[T] {
	return Number[T]{re: x.re - y.re, du: x.du - y.du}
}

// Mul returns (a·b, a'·b + a·b') — the product rule.
func (x Number[T]) Mul(y Number[T]) Number[T] {
	return Number[T]{
		re: x.re * y.re,
		du: x.du*y.re + x.re*y.du,
	}
}

// Div returns (a/b, (a'·b − a·b')/b²) — the quotient rule.
// For b = 0 both components are non-finite.
func (x Number[T]) Div(y Number[T]) Number[T] {
	return Number[T]{
		re: x.re / y.re,
		du: (x.du*y.re - x.re*y.du) / (y.re * y.re),
	}
}

// Neg returns (−a, −a').
func (x Number[T]) Neg() Number[T] {
	return Number[T]{re: -x.re, du: -x.du}
}

// AddScalar returns x + c.
func (x Number[T]) AddScalar(c T) Number[T] { return x.Add(Const(c)) }

// SubScalar returns x − c.
func (x Number[T]) SubScalar(c T) Number[T] { return x.Sub(Const(c)) }

// MulScalar returns x·c.
func (x Number[T]) MulScalar(c T) Number[T] { return x.Mul(Const(c)) }

// DivScalar returns x/c.
func (x Number[T]) DivScalar(c T) Number[T] { return x.Div(Const(c)) }

// ScalarAdd returns c + x.
func ScalarAdd[T Float](c T, x Number[T]) Number[T] { return Const(c).Add(x) }

// ScalarSub returns c − x.
func ScalarSub[T Float](c T, x Number[T]) Number[T] { return Const(c).Sub(x) }

// ScalarMul returns c·x.
func ScalarMul[T Float](c T, x Number[T]) Number[T] { return Const(c).Mul(x) }

// ScalarDiv returns c/x, e.g. ScalarDiv(1, x) is the reciprocal with
// derivative −x'/x².
func ScalarDiv[T Float](c T, x Number[T]) Number[T] { return Const(c).Div(x) }

// AddAssign sets x = x + y.
func (x *Number[T]) AddAssign(y Number[T]) { *x = x.Add(y) }

// SubAssign sets x = x − y.
func (x *Number[T]) SubAssign(y Number[T]) { *x = x.Sub(y) }

// MulAssign sets x = x·y.
func (x *Number[T]) MulAssign(y Number[T]) { *x = x.Mul(y) }

// DivAssign sets x = x/y.
func (x *Number[T]) DivAssign(y Number[T]) { *x = x.Div(y) }
