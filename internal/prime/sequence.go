package prime

import (
	"iter"
	"math"
	"slices"

	dErrors "primefinder/pkg/domain-errors"
)

// Sequence lazily yields primes in increasing order, starting at 2. It keeps
// every prime it has emitted so later candidates can be tested against them.
// A Sequence is not safe for concurrent use.
type Sequence struct {
	strategy  Strategy
	known     []int
	candidate int
	tested    int
	exhausted bool
}

// NewSequence returns a Sequence positioned before the first prime. An
// invalid strategy falls back to StrategyKnownPrimes.
func NewSequence(strategy Strategy) *Sequence {
	if !strategy.IsValid() {
		strategy = StrategyKnownPrimes
	}
	return &Sequence{
		strategy:  strategy,
		candidate: 2,
	}
}

// Next returns the next prime. It fails with CodeOverflow once every int
// candidate has been examined.
func (s *Sequence) Next() (int, error) {
	for !s.exhausted {
		candidate := s.candidate
		if candidate == math.MaxInt {
			s.exhausted = true
		} else {
			s.candidate++
		}
		s.tested++

		if s.strategy.test(candidate, s.known) {
			s.known = append(s.known, candidate)
			return candidate, nil
		}
	}
	return 0, dErrors.New(dErrors.CodeOverflow, "prime candidates exhausted the int range")
}

// Known returns a copy of the primes emitted so far.
func (s *Sequence) Known() []int {
	return slices.Clone(s.known)
}

// Tested returns how many candidates have been examined.
func (s *Sequence) Tested() int {
	return s.tested
}

// Strategy returns the strategy the sequence classifies candidates with.
func (s *Sequence) Strategy() Strategy {
	return s.strategy
}

// Primes returns an infinite sequence of primes. Every range over the result
// starts again from 2. The sequence ends only if the int range is exhausted.
func Primes(strategy Strategy) iter.Seq[int] {
	return func(yield func(int) bool) {
		seq := NewSequence(strategy)
		for {
			p, err := seq.Next()
			if err != nil {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}
