// Package check: sentinel error set.
// Every message is prefixed with "check: ..."; Run wraps them as
// "run: check: ..." and callers match with errors.Is.

package check

import "errors"

var (
	// ErrNilFunc indicates that f was nil.
	ErrNilFunc = errors.New("check: function is nil")

	// ErrBadSamples indicates Samples <= 0.
	ErrBadSamples = errors.New("check: samples must be > 0")

	// ErrBadRange indicates a non-finite bound or Lo >= Hi.
	ErrBadRange = errors.New("check: range must be finite with lo < hi")

	// ErrBadStep indicates a central-difference step that is not finite and > 0,
	// or that is lost in rounding next to Lo or Hi in the scalar type.
	ErrBadStep = errors.New("check: step must be finite and > 0")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("check: tolerances must be >= 0")
)
