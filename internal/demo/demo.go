// Package demo implements the dualnum command: it samples points, evaluates a
// registered case with dual numbers and prints the value next to the
// closed-form, dual and numerical derivatives.
package demo

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/dualnum/check"
)

var (
	// ErrUnknownCase indicates a case name missing from the registry.
	ErrUnknownCase = errors.New("demo: unknown case")

	// ErrChecksFailed is returned in strict mode when any sample disagrees.
	ErrChecksFailed = errors.New("demo: derivative checks failed")

	// ErrBadTimeout indicates a negative timeout.
	ErrBadTimeout = errors.New("demo: timeout must be >= 0")
)

// Config holds command configuration. Environment variables are read first,
// flags override them.
type Config struct {
	Case      string        `env:"DUALNUM_CASE" envDefault:"mixed"`
	Samples   int           `env:"DUALNUM_SAMPLES" envDefault:"10"`
	Seed      int64         `env:"DUALNUM_SEED"`
	Lo        float64       `env:"DUALNUM_LO" envDefault:"-20"`
	Hi        float64       `env:"DUALNUM_HI" envDefault:"20"`
	Step      float64       `env:"DUALNUM_STEP" envDefault:"1e-10"`
	Precision int           `env:"DUALNUM_PRECISION" envDefault:"20"`
	Timeout   time.Duration `env:"DUALNUM_TIMEOUT" envDefault:"30s"`
	Strict    bool          `env:"DUALNUM_STRICT"`
}

// ParseConfig parses environment then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Case, "case", cfg.Case, "function to differentiate ("+strings.Join(CaseNames(), "|")+")")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of sampled points")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "sampling seed (0 = time-based)")
	fs.Float64Var(&cfg.Lo, "lo", cfg.Lo, "lower bound of the sampling interval")
	fs.Float64Var(&cfg.Hi, "hi", cfg.Hi, "upper bound of the sampling interval")
	fs.Float64Var(&cfg.Step, "step", cfg.Step, "central-difference step")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "significant digits of printed results")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout (0 = none)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit with an error when any sample disagrees")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if _, ok := Lookup(cfg.Case); !ok {
		return Config{}, fmt.Errorf("%w %q", ErrUnknownCase, cfg.Case)
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrBadTimeout, cfg.Timeout)
	}
	return cfg, nil
}

// NewContext derives the run context from parent. A zero Timeout means no
// deadline.
func NewContext(parent context.Context, cfg Config) (context.Context, context.CancelFunc) {
	if cfg.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, cfg.Timeout)
}

// Run executes the command, writing the report to out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	c, ok := Lookup(cfg.Case)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCase, cfg.Case)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fmt.Fprintf(out, "seed : %d\n", seed)

	opts := check.DefaultOptions()
	opts.Samples = cfg.Samples
	opts.Lo, opts.Hi = cfg.Lo, cfg.Hi
	opts.Seed = seed
	opts.Step = cfg.Step
	opts.Ctx = ctx

	rep, err := check.Run(c.F, c.DF, opts)
	if err != nil {
		return err
	}

	p := cfg.Precision
	for _, s := range rep.Samples {
		fmt.Fprintf(out, "function : f (%.5g) = %.*g\n", s.X, p, s.Value)
		fmt.Fprintf(out, "comp alg : f'(%.5g) = %.*g\n", s.X, p, s.Exact)
		fmt.Fprintf(out, "dual nb  : f'(%.5g) = %.*g\n", s.X, p, s.Dual)
		fmt.Fprintf(out, "numerical: f'(%.5g) = %.*g\n", s.X, p, s.Numeric)
		fmt.Fprintln(out)
		if !s.OK {
			fmt.Fprintf(errOut, "mismatch at x=%.*g\n", p, s.X)
		}
	}
	fmt.Fprintf(out, "f(x) = %s: %d samples, %d failed\n", c.Expr, len(rep.Samples), rep.Failed)

	if cfg.Strict && !rep.OK() {
		return ErrChecksFailed
	}
	return nil
}
