package desrng

import "errors"

var (
	// ErrInvalidModulus is returned when a modulus m <= 1 is passed to a classifier routine.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrInvalidSeed is returned when a generator is seeded outside [1, m-1].
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrAnalysisCanceled is returned when a long-running analysis is aborted through its context.
	// The returned error also wraps the context's error, so errors.Is(err, context.DeadlineExceeded) works too.
	ErrAnalysisCanceled = errors.New("analysis canceled")

	// ErrNotFullPeriod is returned by the multiplier enumeration when the seed multiplier
	// turns out not to have full period relative to m.
	ErrNotFullPeriod = errors.New("not a full-period multiplier")

	// ErrDomain is returned for arithmetic inputs outside the documented domain of a function.
	ErrDomain = errors.New("argument out of domain")
)
