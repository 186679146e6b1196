package prime

import (
	"fmt"

	dErrors "primefinder/pkg/domain-errors"
)

// NthPrime returns the n-th prime, 1-indexed: NthPrime(1) == 2.
func NthPrime(n int) (int, error) {
	return NthPrimeWith(StrategyKnownPrimes, n)
}

// NthPrimeWith returns the n-th prime using the given strategy. n must be at
// least 1.
func NthPrimeWith(strategy Strategy, n int) (int, error) {
	p, _, err := Nth(NewSequence(strategy), n)
	return p, err
}

// Nth draws n more primes from seq and returns the last one together with the
// number of candidates examined by this call. On a fresh sequence that is the
// n-th prime.
func Nth(seq *Sequence, n int) (int, int, error) {
	if n < 1 {
		return 0, 0, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("n must be a positive integer, got %d", n))
	}

	start := seq.Tested()
	var p int
	for range n {
		next, err := seq.Next()
		if err != nil {
			return 0, seq.Tested() - start, err
		}
		p = next
	}
	return p, seq.Tested() - start, nil
}

// FirstN returns the first n primes in increasing order. n may be zero.
func FirstN(strategy Strategy, n int) ([]int, error) {
	return Take(NewSequence(strategy), n)
}

// Take draws the next n primes from seq in order. n may be zero.
func Take(seq *Sequence, n int) ([]int, error) {
	if n < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("n must not be negative, got %d", n))
	}

	primes := make([]int, 0, min(n, 1<<16))
	for range n {
		p, err := seq.Next()
		if err != nil {
			return nil, err
		}
		primes = append(primes, p)
	}
	return primes, nil
}

// Check classifies a single candidate with strategy, generating known primes
// only as far as they are needed. It returns the verdict and the number of
// candidates the generator examined along the way.
//
// StrategyKnownPrimes stops at the first generated prime that divides the
// candidate or exceeds its square root. StrategyFilteredPrimes generates every
// prime up to the root first. StrategyTrialDivision needs no generator.
func Check(strategy Strategy, candidate int) (bool, int) {
	if candidate < 2 {
		return false, 0
	}
	if strategy == StrategyTrialDivision {
		return IsPrimeTrialDivision(candidate), 0
	}

	root := isqrt(candidate)
	seq := NewSequence(strategy)
	for {
		p, err := seq.Next()
		if err != nil || p > root {
			break
		}
		if strategy != StrategyFilteredPrimes && candidate%p == 0 {
			return false, seq.Tested()
		}
	}
	return strategy.test(candidate, seq.known), seq.Tested()
}
