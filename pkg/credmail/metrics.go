package credmail

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch outcomes recorded by Metrics.
const (
	OutcomeSent             = "sent"
	OutcomeMissingFields    = "missing_fields"
	OutcomeProviderError    = "provider_error"
	OutcomeUnexpected       = "unexpected"
	OutcomeMethodNotAllowed = "method_not_allowed"
)

// Metrics counts dispatch outcomes and provider latency.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	dispatches       *prometheus.CounterVec
	providerDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg (the default
// registerer when nil). Registering twice on the same registry reuses the
// collectors that are already there.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "credmail_dispatch_total",
		Help: "Credential email dispatch attempts by outcome",
	}, []string{"outcome"})
	if err := reg.Register(dispatches); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		dispatches = existing
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "credmail_provider_duration_seconds",
		Help:    "Latency of the email provider send call",
		Buckets: prometheus.DefBuckets,
	})
	if err := reg.Register(duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(prometheus.Histogram)
		if !ok {
			return nil, err
		}
		duration = existing
	}

	// Pre-create every label so dashboards see zeros instead of gaps.
	for _, o := range []string{OutcomeSent, OutcomeMissingFields, OutcomeProviderError, OutcomeUnexpected, OutcomeMethodNotAllowed} {
		dispatches.WithLabelValues(o)
	}

	return &Metrics{dispatches: dispatches, providerDuration: duration}, nil
}

func (m *Metrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeProvider(d time.Duration) {
	if m == nil {
		return
	}
	m.providerDuration.Observe(d.Seconds())
}

// outcomeOf maps a Dispatch error to its metric label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSent
	case errors.Is(err, ErrMethodNotAllowed):
		return OutcomeMethodNotAllowed
	case errors.Is(err, ErrMissingFields):
		return OutcomeMissingFields
	case errors.Is(err, ErrProviderRejected):
		return OutcomeProviderError
	default:
		return OutcomeUnexpected
	}
}
