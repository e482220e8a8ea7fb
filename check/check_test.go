package check_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dualnum/check"
	"github.com/katalvlaran/dualnum/dual"
)

type num = dual.Number[float64]

func product(x num) num { return x.Mul(x.AddScalar(1)) }

func productPrime(x float64) float64 { return 2*x + 1 }

// RunSuite exercises the sampling cross-check.
type RunSuite struct {
	suite.Suite
}

// TestDefaultsPass verifies the easy case passes on the default interval.
func (s *RunSuite) TestDefaultsPass() {
	rep, err := check.Run(product, productPrime, check.DefaultOptions())
	require.NoError(s.T(), err)
	require.Len(s.T(), rep.Samples, 10)
	require.True(s.T(), rep.OK(), "x·(x+1) must pass everywhere")
	for _, smp := range rep.Samples {
		require.True(s.T(), smp.HasExact)
		require.GreaterOrEqual(s.T(), smp.X, -20.0)
		require.Less(s.T(), smp.X, 20.0)
		require.Equal(s.T(), smp.X*(smp.X+1), smp.Value)
		require.InDelta(s.T(), 2*smp.X+1, smp.Dual, 1e-12)
	}
}

// TestMixedPasses checks log(2|x|)+exp(x)+sin(x³) on a tame interval.
func (s *RunSuite) TestMixedPasses() {
	f := func(x num) num {
		return dual.Log(dual.Abs(x).MulScalar(2)).Add(dual.Exp(x)).Add(dual.Sin(dual.Pow(x, 3)))
	}
	df := func(x float64) float64 { return 1/x + math.Exp(x) + 3*x*x*math.Cos(x*x*x) }

	opts := check.DefaultOptions()
	opts.Samples = 50
	opts.Lo, opts.Hi = 0.5, 3
	opts.Step = 1e-6
	opts.Seed = 7

	rep, err := check.Run(f, df, opts)
	require.NoError(s.T(), err)
	require.True(s.T(), rep.OK(), "failed %d of %d", rep.Failed, len(rep.Samples))
}

// TestDeterministicSeed: same seed ⇒ same points; 0 ⇒ default seed 1.
func (s *RunSuite) TestDeterministicSeed() {
	opts := check.DefaultOptions()
	opts.Seed = 99
	a, err := check.Run(product, nil, opts)
	require.NoError(s.T(), err)
	b, err := check.Run(product, nil, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Samples, b.Samples)
	require.Equal(s.T(), int64(99), a.Seed)

	opts.Seed = 0
	z, err := check.Run(product, nil, opts)
	require.NoError(s.T(), err)
	opts.Seed = 1
	one, err := check.Run(product, nil, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), z.Seed)
	require.Equal(s.T(), one.Samples, z.Samples)
	require.NotEqual(s.T(), a.Samples[0].X, z.Samples[0].X)
}

// TestWithoutClosedForm only compares against the numeric estimate.
func (s *RunSuite) TestWithoutClosedForm() {
	rep, err := check.Run(product, nil, check.DefaultOptions())
	require.NoError(s.T(), err)
	require.True(s.T(), rep.OK())
	for _, smp := range rep.Samples {
		require.False(s.T(), smp.HasExact)
		require.Equal(s.T(), 0.0, smp.Exact)
	}
}

// TestWrongClosedFormFails: a bad reference derivative fails every sample.
func (s *RunSuite) TestWrongClosedFormFails() {
	wrong := func(x float64) float64 { return 2*x + 5 }
	rep, err := check.Run(product, wrong, check.DefaultOptions())
	require.NoError(s.T(), err)
	require.False(s.T(), rep.OK())
	require.Equal(s.T(), len(rep.Samples), rep.Failed)
}

// TestNonFiniteFails: NaN values never pass, even when the closed form agrees.
func (s *RunSuite) TestNonFiniteFails() {
	f := func(x num) num { return dual.Log(x) }
	opts := check.DefaultOptions()
	opts.Lo, opts.Hi = -2, -1 // ln of negatives is NaN
	rep, err := check.Run(f, func(x float64) float64 { return 1 / x }, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), opts.Samples, rep.Failed)
}

// TestCanceled returns ctx.Err() before the first sample.
func (s *RunSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := check.DefaultOptions()
	opts.Ctx = ctx

	rep, err := check.Run(product, productPrime, opts)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Empty(s.T(), rep.Samples)
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

// TestRun_InvalidOptions covers every sentinel.
func TestRun_InvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*check.Options)
		f    dual.Func[float64]
		want error
	}{
		{"nil func", func(*check.Options) {}, nil, check.ErrNilFunc},
		{"zero samples", func(o *check.Options) { o.Samples = 0 }, product, check.ErrBadSamples},
		{"inverted range", func(o *check.Options) { o.Lo, o.Hi = 1, -1 }, product, check.ErrBadRange},
		{"empty range", func(o *check.Options) { o.Lo, o.Hi = 1, 1 }, product, check.ErrBadRange},
		{"inf range", func(o *check.Options) { o.Hi = math.Inf(1) }, product, check.ErrBadRange},
		{"zero step", func(o *check.Options) { o.Step = 0 }, product, check.ErrBadStep},
		{"nan step", func(o *check.Options) { o.Step = math.NaN() }, product, check.ErrBadStep},
		{"negative tol", func(o *check.Options) { o.Tol = -1 }, product, check.ErrBadTolerance},
		{"nan numtol", func(o *check.Options) { o.NumTol = math.NaN() }, product, check.ErrBadTolerance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := check.DefaultOptions()
			tc.mod(&opts)
			_, err := check.Run(tc.f, productPrime, opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRun_StepLostInRounding rejects steps that vanish next to the bounds.
func TestRun_StepLostInRounding(t *testing.T) {
	f32 := func(x dual.Number[float32]) dual.Number[float32] { return x.MulScalar(3) }
	_, err := check.Run(f32, nil, check.DefaultOptions())
	assert.ErrorIs(t, err, check.ErrBadStep, "float32 cannot resolve 20 ± 1e-10")

	opts := check.DefaultOptions()
	opts.Lo, opts.Hi = 1e8, 2e8
	_, err = check.Run(product, productPrime, opts)
	assert.ErrorIs(t, err, check.ErrBadStep, "float64 cannot resolve 2e8 ± 1e-10")

	opts.Step = 1e-4
	_, err = check.Run(product, productPrime, opts)
	assert.NoError(t, err)
}

// TestRun_Float32 runs the driver over float32.
func TestRun_Float32(t *testing.T) {
	f := func(x dual.Number[float32]) dual.Number[float32] { return x.MulScalar(3).AddScalar(1) }
	opts := check.DefaultOptions()
	opts.Step = 1e-2
	opts.Tol = 1e-6
	opts.NumTol = 1e-2
	rep, err := check.Run(f, func(float32) float32 { return 3 }, opts)
	require.NoError(t, err)
	assert.True(t, rep.OK(), "failed %d", rep.Failed)
}
