// Package check defines options and results for the sampling cross-check.
package check

import (
	"context"

	"github.com/katalvlaran/dualnum/dual"
)

// Options configures Run.
//
// Fields:
//   - Samples — number of sampled points (> 0).
//   - Lo, Hi  — sampling interval [Lo, Hi); both finite, Lo < Hi.
//   - Seed    — RNG seed; 0 selects the fixed default.
//   - Step    — central-difference step h (> 0). It must survive x±h at the
//     interval bounds in T: float32 callers need a larger step than the
//     float64 default of 1e-10.
//   - Tol     — relative tolerance of dual vs closed form.
//   - NumTol  — relative tolerance of dual vs central difference. Looser than
//     Tol because the estimate is limited by round-off at small steps.
//   - Ctx     — checked before every sample; nil means context.Background().
//
// Relative tolerances are applied as tol·max(1, |reference|).
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Samples = 100
//	opts.Lo, opts.Hi = 0.1, 5
type Options struct {
	Samples int
	Lo      float64
	Hi      float64
	Seed    int64
	Step    float64
	Tol     float64
	NumTol  float64
	Ctx     context.Context
}

// DefaultOptions returns 10 samples on [-20, 20) with step 1e-10,
// Tol = 1e-9 and NumTol = 1e-3.
func DefaultOptions() Options {
	return Options{
		Samples: 10,
		Lo:      -20,
		Hi:      20,
		Seed:    0,
		Step:    1e-10,
		Tol:     1e-9,
		NumTol:  1e-3,
	}
}

// Sample is one evaluated point.
type Sample[T dual.Float] struct {
	X        T    // evaluation point
	Value    T    // f(X)
	Dual     T    // f'(X) from the dual component
	Exact    T    // closed-form f'(X); zero when HasExact is false
	HasExact bool // a closed form was supplied
	Numeric  T    // central-difference estimate
	OK       bool // within both tolerances
}

// Report collects every sample of a run.
type Report[T dual.Float] struct {
	Seed    int64 // effective seed after the zero-seed policy
	Samples []Sample[T]
	Failed  int
}

// normalize fills a nil Ctx.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// OK reports whether every sample passed.
func (r Report[T]) OK() bool { return r.Failed == 0 }
