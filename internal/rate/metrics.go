package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const metricsNamespace = "fxagent"

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	attempts  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	fallbacks prometheus.Counter
	exhausted prometheus.Counter
	summaries *prometheus.CounterVec
	up        *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "provider_attempts_total",
			Help:      "Rates provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Rates provider call latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "provider_fallbacks_total",
			Help:      "Fetches that had to call the secondary provider.",
		}),
		exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "provider_exhausted_total",
			Help:      "Fetches where every provider failed.",
		}),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "summary_requests_total",
			Help:      "Market summary requests by result.",
		}, []string{"result"}),
		up: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "provider_up",
			Help:      "Last health probe result per provider (1 healthy, 0 failing).",
		}, []string{"provider"}),
	}

	for _, c := range []prometheus.Collector{m.attempts, m.latency, m.fallbacks, m.exhausted, m.summaries, m.up} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) ObserveFetch(_ context.Context, attempts []domain.ProviderAttempt) {
	if m == nil || len(attempts) == 0 {
		return
	}
	for _, a := range attempts {
		m.attempts.WithLabelValues(a.Provider, string(a.Outcome)).Inc()
		m.latency.WithLabelValues(a.Provider).Observe((time.Duration(a.ElapsedMS) * time.Millisecond).Seconds())
	}
	if len(attempts) > 1 {
		m.fallbacks.Inc()
	}
	// a fetch aborted after the primary failed is not exhaustion
	if len(attempts) == 2 && attempts[0].Outcome == domain.OutcomeFailure && attempts[1].Outcome == domain.OutcomeFailure {
		m.exhausted.Inc()
	}
}

func (m *Metrics) ObserveSummary(result string) {
	if m == nil {
		return
	}
	m.summaries.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveProbe(status domain.ProviderStatus) {
	if m == nil {
		return
	}
	v := 0.0
	if status.Healthy {
		v = 1
	}
	m.up.WithLabelValues(status.Provider).Set(v)
}
