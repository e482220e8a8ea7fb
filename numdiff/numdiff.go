// SPDX-License-Identifier: MIT
// Package numdiff estimates derivatives of dual-number functions by finite
// differences, as an independent cross-check of the exact dual derivative.
//
// Every estimate reads only the real component of f's result; the dual
// component is never consulted, so f is treated as a plain scalar function.
//
//	d, err := numdiff.Central(f, dual.Var(x), numdiff.DefaultStep)
//
// Errors:
//   - ErrNilFunc — f is nil.
//   - ErrBadStep — h is not a finite positive number.
package numdiff

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dualnum/dual"
)

// DefaultStep is the absolute step used by the cross-check driver.
const DefaultStep = 1e-10

var (
	// ErrNilFunc indicates a nil function was supplied.
	ErrNilFunc = errors.New("numdiff: function is nil")

	// ErrBadStep indicates h <= 0, NaN or ±Inf.
	ErrBadStep = errors.New("numdiff: step must be finite and > 0")
)

// Central returns (f(x+h) − f(x−h)) / 2h, using real parts only.
//
// The +h probe is seeded as a variable and the −h probe as a constant; their
// dual components differ but are discarded.
//
// Complexity: two evaluations of f.
func Central[T dual.Float](f dual.Func[T], x dual.Number[T], h T) (T, error) {
	if err := validate(f, h); err != nil {
		return 0, numdiffErrorf("central", err)
	}
	hi := f(dual.Var(x.Real() + h)).Real()
	lo := f(dual.Const(x.Real() - h)).Real()
	return (hi - lo) / (2 * h), nil
}

// Forward returns (f(x+h) − f(x)) / h.
func Forward[T dual.Float](f dual.Func[T], x dual.Number[T], h T) (T, error) {
	if err := validate(f, h); err != nil {
		return 0, numdiffErrorf("forward", err)
	}
	hi := f(dual.Const(x.Real() + h)).Real()
	mid := f(dual.Const(x.Real())).Real()
	return (hi - mid) / h, nil
}

// Backward returns (f(x) − f(x−h)) / h.
func Backward[T dual.Float](f dual.Func[T], x dual.Number[T], h T) (T, error) {
	if err := validate(f, h); err != nil {
		return 0, numdiffErrorf("backward", err)
	}
	mid := f(dual.Const(x.Real())).Real()
	lo := f(dual.Const(x.Real() - h)).Real()
	return (mid - lo) / h, nil
}

func validate[T dual.Float](f dual.Func[T], h T) error {
	if f == nil {
		return ErrNilFunc
	}
	s := float64(h)
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return ErrBadStep
	}
	return nil
}

// numdiffErrorf tags err with the failing operation, keeping errors.Is intact.
func numdiffErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
