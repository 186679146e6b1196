package prime

import (
	"strings"

	dErrors "primefinder/pkg/domain-errors"
)

// Strategy selects the divisor set used to classify a candidate.
// All strategies classify every candidate identically; they differ only in cost.
type Strategy int

const (
	// StrategyKnownPrimes scans known primes in order and stops at the first
	// one above the candidate's square root.
	StrategyKnownPrimes Strategy = iota
	// StrategyFilteredPrimes collects every known prime up to the square root
	// first, then tests each of them.
	StrategyFilteredPrimes
	// StrategyTrialDivision ignores known primes and tries every integer from 2
	// up to the square root.
	StrategyTrialDivision
)

var strategyNames = map[Strategy]string{
	StrategyKnownPrimes:    "known-primes",
	StrategyFilteredPrimes: "filtered-primes",
	StrategyTrialDivision:  "trial-division",
}

// Strategies lists every supported strategy, canonical first.
func Strategies() []Strategy {
	return []Strategy{StrategyKnownPrimes, StrategyFilteredPrimes, StrategyTrialDivision}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether s is one of the supported strategies.
func (s Strategy) IsValid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy resolves a strategy from its name. The empty string selects
// StrategyKnownPrimes.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StrategyKnownPrimes, nil
	}
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return StrategyKnownPrimes, dErrors.New(dErrors.CodeInvalidInput, "unknown strategy "+name)
}

// test classifies candidate, consulting knownPrimes when the strategy uses them.
func (s Strategy) test(candidate int, knownPrimes []int) bool {
	switch s {
	case StrategyFilteredPrimes:
		return IsPrimeFiltered(candidate, knownPrimes)
	case StrategyTrialDivision:
		return IsPrimeTrialDivision(candidate)
	default:
		return IsPrime(candidate, knownPrimes)
	}
}
