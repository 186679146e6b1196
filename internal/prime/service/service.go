package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"primefinder/internal/prime"
	dErrors "primefinder/pkg/domain-errors"
)

// Operation labels used for logging and metrics.
const (
	OperationNthPrime = "nth_prime"
	OperationFirstN   = "first_n"
	OperationIsPrime  = "is_prime"
)

// Recorder receives lookup measurements. *metrics.Metrics implements it.
type Recorder interface {
	IncrementLookups(operation string)
	IncrementFailures(operation string)
	AddCandidatesTested(count int)
	ObserveLookupDuration(operation string, seconds float64)
}

// Service answers prime lookups with the configured strategy. Every call runs
// its own generator; nothing is shared between calls.
type Service struct {
	recorder Recorder
	strategy prime.Strategy
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithStrategy(strategy prime.Strategy) Option {
	return func(s *Service) {
		s.strategy = strategy
	}
}

func New(recorder Recorder, opts ...Option) (*Service, error) {
	if recorder == nil {
		return nil, fmt.Errorf("metrics recorder is required")
	}

	svc := &Service{
		recorder: recorder,
		strategy: prime.StrategyKnownPrimes,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(svc)
	}

	if !svc.strategy.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid strategy")
	}

	return svc, nil
}

// Strategy returns the strategy lookups run with.
func (s *Service) Strategy() prime.Strategy {
	return s.strategy
}

// NthPrime returns the n-th prime, 1-indexed.
func (s *Service) NthPrime(ctx context.Context, n int) (int, error) {
	var p int
	err := s.track(ctx, OperationNthPrime, []any{"n", n}, func() (int, error) {
		var tested int
		var err error
		p, tested, err = prime.Nth(prime.NewSequence(s.strategy), n)
		return tested, err
	})
	if err != nil {
		return 0, err
	}
	return p, nil
}

// FirstN returns the first n primes in increasing order.
func (s *Service) FirstN(ctx context.Context, n int) ([]int, error) {
	var primes []int
	err := s.track(ctx, OperationFirstN, []any{"n", n}, func() (int, error) {
		seq := prime.NewSequence(s.strategy)
		var err error
		primes, err = prime.Take(seq, n)
		return seq.Tested(), err
	})
	if err != nil {
		return nil, err
	}
	return primes, nil
}

// IsPrime reports whether candidate is prime. Values below 2 are not prime.
func (s *Service) IsPrime(ctx context.Context, candidate int) (bool, error) {
	var verdict bool
	err := s.track(ctx, OperationIsPrime, []any{"candidate", candidate}, func() (int, error) {
		var tested int
		verdict, tested = prime.Check(s.strategy, candidate)
		return tested, nil
	})
	return verdict, err
}

// track runs one lookup, recording metrics and logging under a fresh lookup id.
func (s *Service) track(ctx context.Context, operation string, attrs []any, fn func() (int, error)) error {
	logger := s.logger.With(
		"lookup_id", uuid.NewString(),
		"operation", operation,
		"strategy", s.strategy.String(),
	)

	s.recorder.IncrementLookups(operation)
	start := time.Now()

	tested, err := fn()

	elapsed := time.Since(start)
	s.recorder.AddCandidatesTested(tested)
	s.recorder.ObserveLookupDuration(operation, elapsed.Seconds())

	if err != nil {
		s.recorder.IncrementFailures(operation)
		logger.WarnContext(ctx, "prime lookup failed",
			append(attrs, "error", err, "error_code", string(dErrors.CodeOf(err)))...,
		)
		return err
	}

	logger.DebugContext(ctx, "prime lookup completed",
		append(attrs, "candidates_tested", tested, "duration_ms", elapsed.Milliseconds())...,
	)
	return nil
}
