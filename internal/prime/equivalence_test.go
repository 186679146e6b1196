package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every strategy must classify every candidate the same way. The known-primes
// strategies are only correct because a composite always has a prime factor
// no larger than its square root; this checks that over a dense range.
func TestStrategiesClassifyIdentically(t *testing.T) {
	const limit = 10000

	var known []int
	for candidate := 2; candidate <= limit; candidate++ {
		want := IsPrimeTrialDivision(candidate)
		require.Equal(t, want, IsPrime(candidate, known), "known-primes disagrees at %d", candidate)
		require.Equal(t, want, IsPrimeFiltered(candidate, known), "filtered-primes disagrees at %d", candidate)
		if want {
			known = append(known, candidate)
		}
	}

	assert.Len(t, known, 1229)
}

func TestStrategiesProduceTheSameSequence(t *testing.T) {
	canonical, err := FirstN(StrategyKnownPrimes, 2000)
	require.NoError(t, err)

	for _, s := range Strategies()[1:] {
		t.Run(s.String(), func(t *testing.T) {
			got, err := FirstN(s, 2000)
			require.NoError(t, err)
			assert.Equal(t, canonical, got)
		})
	}
}

// Every emitted prime has no divisor other than 1 and itself.
func TestEmittedPrimesHaveNoProperDivisors(t *testing.T) {
	primes, err := FirstN(StrategyKnownPrimes, 500)
	require.NoError(t, err)

	for _, p := range primes {
		for d := 2; d < p; d++ {
			require.NotZero(t, p%d, "%d divides %d", d, p)
		}
	}
}
