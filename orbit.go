package desrng

import (
	"context"

	set3 "github.com/TomTonic/Set3"
	"github.com/sirupsen/logrus"
)

// Stepper is a deterministic state-transition function S -> S.
// Step must be a pure function of its argument: no hidden state and no dependence on the
// order of calls. AnalyzeOrbit cannot check this; with an impure Stepper its result is meaningless.
type Stepper[S comparable] interface {
	Step(x S) S
}

// StepFunc adapts an ordinary function to the Stepper interface.
type StepFunc[S comparable] func(x S) S

// Step calls f(x).
func (f StepFunc[S]) Step(x S) S { return f(x) }

// AnalyzeOrbit follows the orbit x0, g(x0), g(g(x0)), ... until a state repeats and returns the
// length of the tail (the index s of the first state that recurs) and the period p of the cycle,
// so that x[s] == x[s+p] and all x[0..s+p-1] are distinct.
// If g(x0) == x0 the result is (0, 1).
//
// Every visited state is kept until the first repetition, so memory grows with tail+period.
// This is meant for small to moderate state spaces such as generators with toy moduli.
// Cancel ctx to abort; the returned error then wraps ErrAnalysisCanceled and ctx.Err().
func AnalyzeOrbit[S comparable](ctx context.Context, g Stepper[S], x0 S) (tail, period int, err error) {
	start := SampleTime()
	history := []S{x0}
	seen := set3.Empty[S]()
	seen.Add(x0)

	x := x0
	for t := 0; ; t++ {
		if t > 0 && t%CancelCheckInterval == 0 {
			if err := canceled(ctx); err != nil {
				logrus.Warnf("orbit analysis aborted after %d states", len(history))
				return 0, 0, err
			}
		}
		x = g.Step(x)
		if seen.Contains(x) {
			// the set only tells whether x recurs; its first index comes from the history
			for s, y := range history {
				if y == x {
					tail, period = s, t+1-s
					break
				}
			}
			logrus.Debugf("orbit analysis: tail %d, period %d (%v)",
				tail, period, Elapsed(start))
			return tail, period, nil
		}
		history = append(history, x)
		seen.Add(x)
	}
}
