package desrng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGcd(t *testing.T) {
	testCases := []struct {
		a, b, expected int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{17, 5, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{2147483646, 48271, 1},
		{2147483646, 331, 331},
	}
	for _, tc := range testCases {
		result, err := Gcd(tc.a, tc.b)
		require.NoError(t, err)
		assert.True(t, result == tc.expected, "FAIL: gcd(%d, %d), expected=%d, got=%d\n", tc.a, tc.b, tc.expected, result)
	}

	_, err := Gcd(-1, 5)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = Gcd(5, -1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestSieve(t *testing.T) {
	primes, err := Sieve(30)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)

	primes, err = Sieve(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, primes)

	primes, err = Sieve(10_000)
	require.NoError(t, err)
	assert.Len(t, primes, 1229)
	for _, p := range primes {
		assert.True(t, IsPrime(int64(p)), "%d is not prime", p)
	}

	_, err = Sieve(2)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestTotient(t *testing.T) {
	testCases := []struct {
		n, expected int64
	}{
		{1, 1},
		{2, 1},
		{12, 4},
		{13, 12},
		{100, 40},
		{2147483646, 534600000},
	}
	for _, tc := range testCases {
		result, err := Totient(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, result, "totient(%d)", tc.n)
	}

	_, err := Totient(0)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestTotientCountsCoprimes(t *testing.T) {
	for n := int64(1); n <= 300; n++ {
		count := int64(0)
		for k := int64(1); k <= n; k++ {
			if gcd(k, n) == 1 {
				count++
			}
		}
		phi, err := Totient(n)
		require.NoError(t, err)
		assert.Equal(t, count, phi, "totient(%d)", n)
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 13, 101, 65537, 2147483647}
	for _, p := range primes {
		assert.True(t, IsPrime(p), "%d", p)
	}
	composites := []int64{-7, 0, 1, 4, 9, 91, 65535, 2147483646, 2147483649}
	for _, c := range composites {
		assert.False(t, IsPrime(c), "%d", c)
	}
}
