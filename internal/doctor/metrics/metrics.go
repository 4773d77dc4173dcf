package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the doctor module.
type Metrics struct {
	// Passes executed, by route
	Passes *prometheus.CounterVec

	// Notices emitted after deduplication, by severity
	Notices *prometheus.CounterVec

	// Checks that failed unexpectedly and were isolated, by check id
	CheckFailures *prometheus.CounterVec

	// Full pass latency including all check I/O
	PassDuration prometheus.Histogram
}

// New creates a new Metrics instance with all doctor metrics registered.
func New() *Metrics {
	return &Metrics{
		Passes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sitedoctor_passes_total",
			Help: "Total diagnostic passes executed by route",
		}, []string{"route"}),

		Notices: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sitedoctor_notices_total",
			Help: "Total notices emitted after deduplication by severity",
		}, []string{"severity"}),

		CheckFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sitedoctor_check_failures_total",
			Help: "Total isolated unanticipated check failures by check id",
		}, []string{"check"}),

		PassDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sitedoctor_pass_duration_seconds",
			Help:    "Duration of a full diagnostic pass including check I/O",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementPass records one executed pass for a route.
func (m *Metrics) IncrementPass(route string) {
	if m != nil {
		m.Passes.WithLabelValues(route).Inc()
	}
}

// IncrementNotice records one emitted notice of the given severity.
func (m *Metrics) IncrementNotice(severity string) {
	if m != nil {
		m.Notices.WithLabelValues(severity).Inc()
	}
}

// IncrementCheckFailure records one isolated check failure.
func (m *Metrics) IncrementCheckFailure(check string) {
	if m != nil {
		m.CheckFailures.WithLabelValues(check).Inc()
	}
}

// ObservePassDuration records the total pass duration.
func (m *Metrics) ObservePassDuration(d time.Duration) {
	if m != nil {
		m.PassDuration.Observe(d.Seconds())
	}
}
