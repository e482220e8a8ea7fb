// SPDX-License-Identifier: MIT
// Package dual defines the Number type, its constructors and accessors.
package dual

import "fmt"

// Float is the scalar bound for Number. Any type whose underlying type is
// float32 or float64 qualifies.
type Float interface {
	~float32 | ~float64
}

// Number is a dual number re + du·ε with ε² = 0.
//
// Fields:
//   - re — the function value component.
//   - du — the derivative (tangent) component.
//
// The zero value is (0, 0). Number has value semantics: copies are
// independent and no operation mutates its operands, except the *Assign
// and Set* methods which update their receiver only.
type Number[T Float] struct {
	re T
	du T
}

// Func is a function built from Number operations. Evaluating it on Var(a)
// yields (f(a), f'(a)).
type Func[T Float] func(Number[T]) Number[T]

// New returns the explicit pair (re, du).
func New[T Float](re, du T) Number[T] {
	return Number[T]{re: re, du: du}
}

// Const lifts a scalar to a constant: (c, 0).
func Const[T Float](c T) Number[T] {
	return Number[T]{re: c}
}

// Var seeds the variable of differentiation: (x, 1).
func Var[T Float](x T) Number[T] {
	return Number[T]{re: x, du: 1}
}

// Real returns the value component.
func (x Number[T]) Real() T { return x.re }

// Dual returns the derivative component.
func (x Number[T]) Dual() T { return x.du }

// SetReal overwrites the value component, keeping the derivative seed.
// Reassigning re on a Var re-targets it to a new evaluation point.
func (x *Number[T]) SetReal(re T) { x.re = re }

// SetDual overwrites the derivative component.
func (x *Number[T]) SetDual(du T) { x.du = du }

// Set overwrites both components.
func (x *Number[T]) Set(re, du T) {
	x.re = re
	x.du = du
}

// Equal reports componentwise equality under T's == (NaN is never equal).
func (x Number[T]) Equal(y Number[T]) bool {
	return x.re == y.re && x.du == y.du
}

// String renders x as "re+duε", e.g. "12+7ε".
func (x Number[T]) String() string {
	return fmt.Sprintf("%g%+gε", float64(x.re), float64(x.du))
}

// Derive evaluates f at a, returning f(a) and f'(a).
func Derive[T Float](f Func[T], a T) (value, deriv T) {
	y := f(Var(a))
	return y.re, y.du
}
