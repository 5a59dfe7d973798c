package desrng

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// CancelCheckInterval is the number of loop iterations between two checks of the context
// in IsFullPeriod, WalkFullPeriodMultipliers and AnalyzeOrbit.
const CancelCheckInterval = 1024

// moduli up to this bound are checked for primality (trial division, at most ~2^20 steps)
const primalityCheckLimit = int64(1) << 40

func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrAnalysisCanceled, err)
	}
	return nil
}

func warnIfComposite(m int64) {
	if m <= primalityCheckLimit && !IsPrime(m) {
		logrus.Warnf("modulus %d is not prime, full-period results are meaningless", m)
	}
}

// IsFullPeriod reports whether a is a full-period multiplier relative to the prime modulus m,
// i.e. whether a is a primitive root modulo m. It walks x = a^p mod m until x returns to 1 and
// checks that this happens exactly at p == m-1.
//
// The caller is responsible for m being prime. For a composite m the answer is meaningless;
// the walk still stops after at most m-1 steps, which can be practically forever for large m.
// Cancel ctx to abort: the returned error then wraps ErrAnalysisCanceled and ctx.Err(),
// which lets the caller tell "false" apart from "aborted".
func IsFullPeriod(ctx context.Context, a, m int64) (bool, error) {
	mu, err := NewMultiplier(a, m)
	if err != nil {
		return false, err
	}
	warnIfComposite(m)

	start := SampleTime()
	p := int64(1)
	x := a
	for x != 1 {
		if p%CancelCheckInterval == 0 {
			if err := canceled(ctx); err != nil {
				logrus.Warnf("full-period test of a=%d m=%d aborted after %d steps", a, m, p)
				return false, err
			}
		}
		if p >= m-1 || x == 0 {
			break
		}
		x = mu.Mul(x)
		p++
	}
	full := x == 1 && p == m-1
	logrus.Debugf("full-period test of a=%d m=%d: %v after %d steps (%v)",
		a, m, full, p, Elapsed(start))
	return full, nil
}

// WalkFullPeriodMultipliers calls fn for every full-period multiplier relative to the prime
// modulus m, given one known full-period multiplier a. The multipliers are a^k mod m for all
// 1 <= k <= m-1 with gcd(k, m-1) == 1, reported in ascending order of k (not sorted by value).
// The walk stops early without error when fn returns false.
//
// If a turns out not to have full period, the walk ends with an error wrapping ErrNotFullPeriod;
// values already passed to fn must then be discarded.
func WalkFullPeriodMultipliers(ctx context.Context, a, m int64, fn func(x int64) bool) error {
	mu, err := NewMultiplier(a, m)
	if err != nil {
		return err
	}
	warnIfComposite(m)

	start := SampleTime()
	order := m - 1
	found := 0
	x := a
	for k := int64(1); ; k++ {
		if k%CancelCheckInterval == 0 {
			if err := canceled(ctx); err != nil {
				logrus.Warnf("multiplier enumeration for a=%d m=%d aborted at k=%d", a, m, k)
				return err
			}
		}
		if gcd(k, order) == 1 {
			found++
			if !fn(x) {
				return nil
			}
		}
		if x == 1 {
			if k != order {
				return fmt.Errorf("multiplier %d has period %d relative to %d: %w", a, k, m, ErrNotFullPeriod)
			}
			break
		}
		if k >= order || x == 0 {
			return fmt.Errorf("multiplier %d does not return to 1 within %d steps relative to %d: %w", a, order, m, ErrNotFullPeriod)
		}
		x = mu.Mul(x)
	}
	logrus.Debugf("found %d full-period multipliers relative to %d (%v)",
		found, m, Elapsed(start))
	return nil
}

// FullPeriodMultipliers returns all full-period multipliers relative to the prime modulus m
// in discovery order, given one known full-period multiplier a. The result has Totient(m-1)
// elements. See WalkFullPeriodMultipliers for a variant that does not hold them in memory.
func FullPeriodMultipliers(ctx context.Context, a, m int64) ([]int64, error) {
	var result []int64
	err := WalkFullPeriodMultipliers(ctx, a, m, func(x int64) bool {
		result = append(result, x)
		return true
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
