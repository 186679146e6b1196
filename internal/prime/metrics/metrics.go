package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for prime lookups.
type Metrics struct {
	LookupsTotal     *prometheus.CounterVec
	FailuresTotal    *prometheus.CounterVec
	CandidatesTested prometheus.Counter
	LookupDuration   *prometheus.HistogramVec
}

// New creates the prime metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "primefinder_lookups_total",
			Help: "Total number of prime lookups by operation",
		}, []string{"operation"}),
		FailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "primefinder_lookup_failures_total",
			Help: "Total number of prime lookups rejected or failed by operation",
		}, []string{"operation"}),
		CandidatesTested: factory.NewCounter(prometheus.CounterOpts{
			Name: "primefinder_candidates_tested_total",
			Help: "Total number of candidates examined for primality",
		}),
		LookupDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "primefinder_lookup_duration_seconds",
			Help:    "Duration of prime lookups by operation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementLookups(operation string) {
	m.LookupsTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementFailures(operation string) {
	m.FailuresTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) AddCandidatesTested(count int) {
	if count <= 0 {
		return
	}
	m.CandidatesTested.Add(float64(count))
}

func (m *Metrics) ObserveLookupDuration(operation string, seconds float64) {
	m.LookupDuration.WithLabelValues(operation).Observe(seconds)
}
