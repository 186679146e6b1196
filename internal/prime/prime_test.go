package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "primefinder/pkg/domain-errors"
)

func TestNthPrime(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{name: "first prime", n: 1, expected: 2},
		{name: "second prime", n: 2, expected: 3},
		{name: "third prime", n: 3, expected: 5},
		{name: "sixth prime", n: 6, expected: 13},
		{name: "hundredth prime", n: 100, expected: 541},
		{name: "10,001st prime", n: 10001, expected: 104743},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NthPrime(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNthPrimeRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, math.MinInt} {
		_, err := NthPrime(n)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), "n=%d", n)
	}
}

func TestNthPrimeWithEveryStrategy(t *testing.T) {
	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			got, err := NthPrimeWith(s, 1000)
			require.NoError(t, err)
			assert.Equal(t, 7919, got)
		})
	}
}

func TestFirstN(t *testing.T) {
	t.Run("matches the first primes", func(t *testing.T) {
		got, err := FirstN(StrategyKnownPrimes, 10)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
	})

	t.Run("zero yields empty", func(t *testing.T) {
		got, err := FirstN(StrategyKnownPrimes, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("negative is invalid", func(t *testing.T) {
		_, err := FirstN(StrategyKnownPrimes, -3)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("each element agrees with NthPrime", func(t *testing.T) {
		primes, err := FirstN(StrategyKnownPrimes, 200)
		require.NoError(t, err)
		for i, p := range primes {
			nth, err := NthPrime(i + 1)
			require.NoError(t, err)
			assert.Equal(t, p, nth, "index %d", i+1)
		}
	})
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name      string
		candidate int
		known     []int
		expected  bool
	}{
		{name: "two with no known primes", candidate: 2, known: nil, expected: true},
		{name: "three with no known primes", candidate: 3, known: []int{}, expected: true},
		{name: "four", candidate: 4, known: []int{2, 3}, expected: false},
		{name: "nine is a square of a known prime", candidate: 9, known: []int{2, 3}, expected: false},
		{name: "eleven", candidate: 11, known: []int{2, 3}, expected: true},
		{name: "twenty-five", candidate: 25, known: []int{2, 3, 5, 7}, expected: false},
		{name: "larger known primes are ignored", candidate: 13, known: []int{2, 3, 5, 7, 11}, expected: true},
		{name: "one", candidate: 1, known: nil, expected: false},
		{name: "zero", candidate: 0, known: nil, expected: false},
		{name: "negative", candidate: -7, known: []int{2, 3}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPrime(tt.candidate, tt.known))
			assert.Equal(t, tt.expected, IsPrimeFiltered(tt.candidate, tt.known))
			assert.Equal(t, tt.expected, IsPrimeTrialDivision(tt.candidate))
		})
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{104743, 323},
		{1 << 62, 1 << 31},
		{(1 << 62) - 1, (1 << 31) - 1},
		{math.MaxInt, 3037000499},
	}

	for _, tt := range tests {
		got := isqrt(tt.n)
		assert.Equal(t, tt.expected, got, "isqrt(%d)", tt.n)
	}
}

func TestStrategy(t *testing.T) {
	t.Run("round trips names", func(t *testing.T) {
		for _, s := range Strategies() {
			parsed, err := ParseStrategy(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("empty selects known primes", func(t *testing.T) {
		s, err := ParseStrategy("  ")
		require.NoError(t, err)
		assert.Equal(t, StrategyKnownPrimes, s)
	})

	t.Run("case insensitive", func(t *testing.T) {
		s, err := ParseStrategy("Trial-Division")
		require.NoError(t, err)
		assert.Equal(t, StrategyTrialDivision, s)
	})

	t.Run("unknown name is invalid input", func(t *testing.T) {
		_, err := ParseStrategy("sieve")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("out of range value", func(t *testing.T) {
		assert.False(t, Strategy(42).IsValid())
		assert.Equal(t, "unknown", Strategy(42).String())
	})
}

func TestCheck(t *testing.T) {
	tests := []struct {
		candidate int
		expected  bool
	}{
		{-4, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{97, true},
		{7919 * 7907, false},
		{104743, true},
		{1_000_000_007, true},
	}

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			for _, tt := range tests {
				got, _ := Check(s, tt.candidate)
				assert.Equal(t, tt.expected, got, "Check(%d)", tt.candidate)
			}
		})
	}

	t.Run("known primes stops at the smallest factor", func(t *testing.T) {
		_, tested := Check(StrategyKnownPrimes, 1_000_000)
		assert.Equal(t, 1, tested)
	})

	t.Run("trial division uses no generator", func(t *testing.T) {
		_, tested := Check(StrategyTrialDivision, 104743)
		assert.Zero(t, tested)
	})
}
