package check

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dualnum/dual"
	"github.com/katalvlaran/dualnum/numdiff"
)

// Run samples opts.Samples points and compares three derivatives of f.
//
// Steps:
//  1. Validate f and opts; normalize Ctx.
//  2. Seed one variable x = Var(0) and an RNG from opts.Seed.
//  3. For each sample:
//     a. Check ctx for cancellation.
//     b. Draw a point and rewrite x's real component only.
//     c. y = f(x); record y.Real() and y.Dual().
//     d. Record df(point) when df != nil.
//     e. Record numdiff.Central(f, x, Step).
//     f. Mark the sample OK when every comparison is within tolerance.
//
// On cancellation the samples gathered so far are returned with ctx.Err().
//
// Complexity: O(Samples) evaluations of f (three per sample).
func Run[T dual.Float](f dual.Func[T], df func(T) T, opts Options) (Report[T], error) {
	if err := validate(f, opts); err != nil {
		return Report[T]{}, checkErrorf("run", err)
	}
	opts.normalize()

	rep := Report[T]{
		Seed:    effectiveSeed(opts.Seed),
		Samples: make([]Sample[T], 0, opts.Samples),
	}
	rng := rngFromSeed(opts.Seed)
	x := dual.Var(T(0))
	h := T(opts.Step)

	for i := 0; i < opts.Samples; i++ {
		if err := opts.Ctx.Err(); err != nil {
			return rep, err
		}
		x.SetReal(T(uniform(rng, opts.Lo, opts.Hi)))

		y := f(x)
		s := Sample[T]{X: x.Real(), Value: y.Real(), Dual: y.Dual(), OK: true}

		if df != nil {
			s.Exact, s.HasExact = df(s.X), true
			s.OK = within(s.Dual, s.Exact, opts.Tol)
		}

		num, err := numdiff.Central(f, x, h)
		if err != nil {
			return rep, checkErrorf("run", err)
		}
		s.Numeric = num
		s.OK = s.OK && within(s.Dual, s.Numeric, opts.NumTol)

		if !s.OK {
			rep.Failed++
		}
		rep.Samples = append(rep.Samples, s)
	}

	return rep, nil
}

func validate[T dual.Float](f dual.Func[T], opts Options) error {
	if f == nil {
		return ErrNilFunc
	}
	if opts.Samples <= 0 {
		return ErrBadSamples
	}
	if !finite(opts.Lo) || !finite(opts.Hi) || opts.Lo >= opts.Hi {
		return ErrBadRange
	}
	if !finite(opts.Step) || opts.Step <= 0 || !resolvable(T(opts.Lo), T(opts.Step)) || !resolvable(T(opts.Hi), T(opts.Step)) {
		return ErrBadStep
	}
	if math.IsNaN(opts.Tol) || opts.Tol < 0 || math.IsNaN(opts.NumTol) || opts.NumTol < 0 {
		return ErrBadTolerance
	}
	return nil
}

// resolvable reports whether x±h differ from x in T. Within [Lo, Hi) the
// spacing of T is widest at the bounds, so checking both covers every point.
func resolvable[T dual.Float](x, h T) bool {
	return h != 0 && x+h != x && x-h != x
}

// within reports |got-ref| <= tol·max(1,|ref|) with both values finite.
func within[T dual.Float](got, ref T, tol float64) bool {
	g, r := float64(got), float64(ref)
	if !finite(g) || !finite(r) {
		return false
	}
	return math.Abs(g-r) <= tol*math.Max(1, math.Abs(r))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
