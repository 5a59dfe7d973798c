package desrng

import "fmt"

// Multiplier computes a*x mod m for a fixed pair (a, m) with Schrage's decomposition
// m = a*q + r, where q = m/a and r = m%a. The pair (q, r) is computed once in NewMultiplier.
//
// No intermediate value ever exceeds m, so every modulus up to math.MaxInt64 is supported and
// the results are bit-identical on all platforms.
// A Multiplier is an immutable value and can be shared freely between goroutines.
type Multiplier struct {
	a, m int64
	q, r int64
}

// NewMultiplier returns a Multiplier for 0 < a < m. It fails with ErrInvalidModulus for m <= 1
// and with ErrDomain for a outside (0, m).
func NewMultiplier(a, m int64) (Multiplier, error) {
	if m <= 1 {
		return Multiplier{}, fmt.Errorf("modulus %d: %w", m, ErrInvalidModulus)
	}
	if a <= 0 || a >= m {
		return Multiplier{}, fmt.Errorf("multiplier %d not in (0, %d): %w", a, m, ErrDomain)
	}
	return Multiplier{a: a, m: m, q: m / a, r: m % a}, nil
}

// A returns the multiplier.
func (mu Multiplier) A() int64 { return mu.a }

// M returns the modulus.
func (mu Multiplier) M() int64 { return mu.m }

// Mul returns a*x mod m. x must be in [0, m); this is not checked.
func (mu Multiplier) Mul(x int64) int64 {
	return schrage(mu.a, mu.q, mu.r, x, mu.m)
}

// Step makes a Multiplier usable as a Stepper[int64] for orbit analysis.
func (mu Multiplier) Step(x int64) int64 {
	return mu.Mul(x)
}

// Compatible reports whether r < q, i.e. whether a single decomposition step suffices.
func (mu Multiplier) Compatible() bool {
	return mu.r < mu.q
}

// MulMod returns (a*x) mod m without overflow for 0 < a < m and 0 <= x < m.
// Inputs outside these ranges fail with ErrDomain (or ErrInvalidModulus for m <= 1).
func MulMod(a, x, m int64) (int64, error) {
	mu, err := NewMultiplier(a, m)
	if err != nil {
		return 0, err
	}
	if x < 0 || x >= m {
		return 0, fmt.Errorf("operand %d not in [0, %d): %w", x, m, ErrDomain)
	}
	return mu.Mul(x), nil
}

// ApproxFactor returns q = m/a and r = m%a, the approximate factorization m = a*q + r.
func ApproxFactor(a, m int64) (q, r int64, err error) {
	mu, err := NewMultiplier(a, m)
	if err != nil {
		return 0, 0, err
	}
	return mu.q, mu.r, nil
}

// IsModulusCompatible reports whether a is modulus-compatible relative to m (m%a < m/a).
// For such multipliers both products of the decomposition are bounded by m in a single step.
func IsModulusCompatible(a, m int64) (bool, error) {
	mu, err := NewMultiplier(a, m)
	if err != nil {
		return false, err
	}
	return mu.Compatible(), nil
}

// schrage evaluates a*x mod m given q = m/a and r = m%a.
//
//	a*x = a*(x%q) - r*(x/q) + m*(x/q)
//
// a*(x%q) < m always holds. r*(x/q) < m holds when r < q; otherwise that product is reduced
// recursively with the smaller multiplier r.
func schrage(a, q, r, x, m int64) int64 {
	t1 := a * (x % q)
	var t2 int64
	if r < q {
		t2 = r * (x / q)
	} else {
		t2 = mulMod(r, x/q, m)
	}
	t := t1 - t2
	if t < 0 {
		t += m
	}
	return t
}

func mulMod(a, x, m int64) int64 {
	if a == 0 || x == 0 {
		return 0
	}
	return schrage(a, m/a, m%a, x, m)
}
