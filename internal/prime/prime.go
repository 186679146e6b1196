// Package prime generates prime numbers in increasing order by trial division
// and answers "what is the n-th prime?".
//
// The canonical generator tests each candidate only against the primes it has
// already found, stopping at the candidate's square root:
//
//	p, err := prime.NthPrime(10001) // 104743
//
// Sequence exposes the same generator one prime at a time, and Primes wraps it
// as an iter.Seq for use with range.
package prime

import "math"

// IsPrime reports whether candidate is prime using knownPrimes as the divisor
// set. knownPrimes must be increasing and contain every prime up to the square
// root of candidate; larger entries are never consulted. Scanning stops at the
// first known prime above the root, so an empty divisor range means prime.
func IsPrime(candidate int, knownPrimes []int) bool {
	if candidate < 2 {
		return false
	}
	root := isqrt(candidate)
	for _, p := range knownPrimes {
		if p > root {
			return true
		}
		if candidate%p == 0 {
			return false
		}
	}
	return true
}

// IsPrimeFiltered has the same contract as IsPrime but first filters the
// known primes up to the root into their own slice and then tests all of them.
func IsPrimeFiltered(candidate int, knownPrimes []int) bool {
	if candidate < 2 {
		return false
	}
	root := isqrt(candidate)
	divisors := make([]int, 0, len(knownPrimes))
	for _, p := range knownPrimes {
		if p <= root {
			divisors = append(divisors, p)
		}
	}
	prime := true
	for _, d := range divisors {
		if candidate%d == 0 {
			prime = false
		}
	}
	return prime
}

// IsPrimeTrialDivision reports whether candidate is prime by trying every
// integer from 2 up to its square root.
func IsPrimeTrialDivision(candidate int) bool {
	if candidate < 2 {
		return false
	}
	root := isqrt(candidate)
	for d := 2; d <= root; d++ {
		if candidate%d == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)) for n >= 0. math.Sqrt can be off by one once
// float64 loses precision, so the estimate is corrected with division, which
// cannot overflow.
func isqrt(n int) int {
	if n < 2 {
		return max(n, 0)
	}
	r := int(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
