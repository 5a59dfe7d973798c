package desrng

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigMulMod(a, x, m int64) int64 {
	p := new(big.Int).Mul(big.NewInt(a), big.NewInt(x))
	return p.Mod(p, big.NewInt(m)).Int64()
}

func TestMulModMatchesBigInt(t *testing.T) {
	moduli := []int64{
		2, 3, 13, 101, 65537,
		2147483647,          // 2^31-1
		4294967291,          // largest prime below 2^32
		2305843009213693951, // 2^61-1
		4611686014132420609, // (2^31-1)^2
		math.MaxInt64,
	}
	rng := rand.New(rand.NewSource(42))
	for _, m := range moduli {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			multipliers := []int64{1, m - 1, m / 2, 16807 % m, 48271 % m, int64(math.Sqrt(float64(m)))}
			for range 20 {
				multipliers = append(multipliers, 1+rng.Int63n(m-1))
			}
			for _, a := range multipliers {
				if a <= 0 || a >= m {
					continue
				}
				operands := []int64{0, 1, m - 1, m / 2}
				for range 200 {
					operands = append(operands, rng.Int63n(m))
				}
				for _, x := range operands {
					got, err := MulMod(a, x, m)
					require.NoError(t, err)
					want := bigMulMod(a, x, m)
					if got != want {
						t.Fatalf("MulMod(%d, %d, %d) = %d, want %d", a, x, m, got, want)
					}
				}
			}
		})
	}
}

func TestMulModNeverExceedsModulus(t *testing.T) {
	// every multiplier of a tiny modulus, every operand
	for m := int64(2); m <= 60; m++ {
		for a := int64(1); a < m; a++ {
			mu, err := NewMultiplier(a, m)
			require.NoError(t, err)
			for x := int64(0); x < m; x++ {
				got := mu.Mul(x)
				assert.Equal(t, (a*x)%m, got, "a=%d x=%d m=%d", a, x, m)
			}
		}
	}
}

func TestMulModDomainErrors(t *testing.T) {
	testCases := []struct {
		a, x, m int64
		want    error
	}{
		{1, 0, 1, ErrInvalidModulus},
		{1, 0, 0, ErrInvalidModulus},
		{1, 0, -7, ErrInvalidModulus},
		{0, 1, 13, ErrDomain},
		{-3, 1, 13, ErrDomain},
		{13, 1, 13, ErrDomain},
		{2, -1, 13, ErrDomain},
		{2, 13, 13, ErrDomain},
	}
	for _, tc := range testCases {
		_, err := MulMod(tc.a, tc.x, tc.m)
		assert.ErrorIs(t, err, tc.want, "MulMod(%d, %d, %d)", tc.a, tc.x, tc.m)
	}
}

func TestApproxFactor(t *testing.T) {
	q, r, err := ApproxFactor(48271, DefaultModulus)
	require.NoError(t, err)
	assert.Equal(t, int64(44488), q)
	assert.Equal(t, int64(3399), r)
	assert.Equal(t, DefaultModulus, 48271*q+r)

	q, r, err = ApproxFactor(16807, DefaultModulus)
	require.NoError(t, err)
	assert.Equal(t, int64(127773), q)
	assert.Equal(t, int64(2836), r)

	_, _, err = ApproxFactor(0, DefaultModulus)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestIsModulusCompatible(t *testing.T) {
	ok, err := IsModulusCompatible(48271, DefaultModulus)
	require.NoError(t, err)
	assert.True(t, ok)

	// a = m-1 gives q = 1, r = 1
	ok, err = IsModulusCompatible(DefaultModulus-1, DefaultModulus)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsModulusCompatible(5, 1)
	assert.ErrorIs(t, err, ErrInvalidModulus)
}

func TestMultiplierAccessors(t *testing.T) {
	mu, err := NewMultiplier(3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), mu.A())
	assert.Equal(t, int64(7), mu.M())
	assert.True(t, mu.Compatible())
	assert.Equal(t, int64(6), mu.Step(2))
	assert.Equal(t, mu.Mul(5), mu.Step(5))
}
