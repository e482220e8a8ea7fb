// Package check cross-validates dual-number derivatives on sampled points.
//
// 🚀 What does it check?
//
//	For each point x drawn uniformly from [Lo, Hi) it records:
//	  • f(x)           — the real part of f(Var(x))
//	  • f'(x) by dual  — the dual part of the same evaluation
//	  • f'(x) exact    — a caller-supplied closed-form derivative (optional)
//	  • f'(x) numeric  — a central-difference estimate (numdiff.Central)
//
//	A sample passes when the dual derivative agrees with the closed form
//	within Tol and with the numeric estimate within the looser NumTol.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dualnum/check"
//
//	opts := check.DefaultOptions()
//	opts.Seed = 42
//	rep, err := check.Run(f, df, opts)
//	if err != nil {
//	  // handle ErrNilFunc, ErrBadSamples, ErrBadRange, ErrBadStep, ErrBadTolerance
//	}
//	fmt.Println(rep.OK(), rep.Failed)
//
// Determinism:
//
//	Same Seed ⇒ same points. Seed == 0 selects a fixed default seed; callers
//	wanting fresh points per run pass a time-derived seed themselves.
//
// One seeded variable is reused for the whole run: only its real component is
// rewritten before each evaluation.
package check
