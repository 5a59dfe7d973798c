package desrng

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
)

const (
	// DefaultMultiplier is the full-period multiplier of the minimal standard generator.
	DefaultMultiplier int64 = 48271
	// DefaultModulus is the Mersenne prime 2^31-1.
	DefaultModulus int64 = 2147483647
	// DefaultSeed is the initial state of a generator created by NewDefaultLehmer.
	DefaultSeed int64 = 123456789
)

// largest modulus for which state/m is guaranteed to stay strictly below 1 in float64
const maxVariateModulus = int64(1) << 53

// Lehmer is a multiplicative linear congruential (Lehmer) generator
// x' = a*x mod m, by default the minimal standard generator with a = 48271 and m = 2^31-1.
// The state stays in [1, m-1] as long as m is prime, so Random never returns 0 or 1.
// The sequence for a given seed is bit-identical on every platform.
// The generator is never reseeded implicitly; call Reset to reproduce a sequence.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe. Use one instance per goroutine.
type Lehmer struct {
	mu    Multiplier
	state int64
}

// NewDefaultLehmer returns a minimal standard generator seeded with DefaultSeed.
func NewDefaultLehmer() *Lehmer {
	g, err := NewLehmer(DefaultSeed)
	if err != nil {
		panic(err) // constants are valid
	}
	return g
}

// NewLehmer returns a minimal standard generator with the given seed in [1, 2^31-2].
func NewLehmer(seed int64) (*Lehmer, error) {
	return NewLehmerWith(DefaultMultiplier, DefaultModulus, seed)
}

// NewLehmerWith returns a generator with a custom multiplier a and modulus m.
// m should be prime and a should be a full-period multiplier (see IsFullPeriod); neither is checked.
// m must not exceed 2^53 so that Random stays strictly inside (0, 1).
func NewLehmerWith(a, m, seed int64) (*Lehmer, error) {
	if m > maxVariateModulus {
		return nil, fmt.Errorf("modulus %d exceeds 2^53: %w", m, ErrInvalidModulus)
	}
	mu, err := NewMultiplier(a, m)
	if err != nil {
		return nil, err
	}
	g := &Lehmer{mu: mu}
	if err := g.Reset(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset sets the state to seed. It fails with ErrInvalidSeed if seed is not in [1, m-1].
func (g *Lehmer) Reset(seed int64) error {
	if seed <= 0 || seed >= g.mu.m {
		return fmt.Errorf("seed %d not in [1, %d]: %w", seed, g.mu.m-1, ErrInvalidSeed)
	}
	g.state = seed
	return nil
}

// State returns the current state. Passing it to Reset resumes the sequence at this point.
func (g *Lehmer) State() int64 { return g.state }

// Multiplier returns the multiplier a.
func (g *Lehmer) Multiplier() int64 { return g.mu.a }

// Modulus returns the modulus m.
func (g *Lehmer) Modulus() int64 { return g.mu.m }

// Random advances the state once and returns state/m, a uniform variate in (0, 1).
// Neither 0 nor 1 is ever returned.
func (g *Lehmer) Random() float64 {
	g.state = g.mu.Mul(g.state)
	return float64(g.state) / float64(g.mu.m)
}

// Uniform returns a Uniform(lo, hi) variate.
func (g *Lehmer) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.Random()
}

// Equilikely returns an integer variate uniformly distributed over [lo, hi].
// Both bounds are inclusive: Equilikely(1, 6) simulates a die.
func (g *Lehmer) Equilikely(lo, hi int64) int64 {
	return lo + int64(float64(hi-lo+1)*g.Random())
}

// Exponential returns an exponential variate with the given mean (rate 1/mean).
// The argument of the logarithm is 1-Random(), which is in (0, 1), so the result is always finite.
func (g *Lehmer) Exponential(mean float64) float64 {
	return -mean * math.Log(1.0-g.Random())
}

// RandomSeed returns a non-deterministic seed in [1, DefaultModulus-1] read from crypto/rand.
func RandomSeed() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(DefaultModulus-1))
	if err != nil {
		panic(err)
	}
	return n.Int64() + 1
}
