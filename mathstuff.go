package desrng

import (
	"fmt"
	"math"
)

// Gcd returns the greatest common divisor of a and b using Euclid's algorithm.
// Both arguments must be non-negative. Gcd(a, 0) == a and Gcd(0, 0) == 0.
func Gcd(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("gcd(%d, %d): both arguments must be non-negative: %w", a, b, ErrDomain)
	}
	return gcd(a, b), nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Sieve returns all primes <= n in ascending order (sieve of Eratosthenes).
// n must be greater than 2.
func Sieve(n int) ([]int, error) {
	if n <= 2 {
		return nil, fmt.Errorf("sieve(%d): n must be greater than 2: %w", n, ErrDomain)
	}
	composite := make([]bool, n+1)
	limit := int(math.Sqrt(float64(n)))
	for p := 2; p <= limit; p++ {
		if composite[p] {
			continue
		}
		for k := p * p; k <= n; k += p {
			composite[k] = true
		}
	}
	primes := make([]int, 0, n/2)
	for p := 2; p <= n; p++ {
		if !composite[p] {
			primes = append(primes, p)
		}
	}
	return primes, nil
}

// primeFactors returns the distinct prime factors of n > 0 in ascending order.
// Trial division; runtime grows with the square root of the largest prime factor.
func primeFactors(n int64) []int64 {
	var factors []int64
	for p := int64(2); p <= n/p; p++ {
		if n%p != 0 {
			continue
		}
		factors = append(factors, p)
		for n%p == 0 {
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Totient returns Euler's totient φ(n), the number of k in [1, n] with gcd(k, n) == 1.
// For a prime modulus m, Totient(m-1) is the number of full-period multipliers.
func Totient(n int64) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("totient(%d): n must be positive: %w", n, ErrDomain)
	}
	result := n
	for _, p := range primeFactors(n) {
		result -= result / p
	}
	return result, nil
}

// IsPrime reports whether n is prime, by trial division.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
