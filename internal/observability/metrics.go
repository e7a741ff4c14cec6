// Package observability wires prometheus metrics and optional OTLP tracing
// into the action lifecycle hooks.
package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quez2777/hodos-360-website/pkg/action"
)

// Metrics holds the per-action instrumentation.
type Metrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers the action metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hodos_action_invocations_total",
				Help: "Total action invocations by outcome",
			},
			[]string{"action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "hodos_action_duration_seconds",
				Help: "Duration of action invocations",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(m.invocations, m.duration)
	return m
}

// Hooks returns lifecycle hooks that record the metrics. When a tracer is
// supplied each invocation also produces a span.
func (m *Metrics) Hooks(tracer *Tracer) action.Hooks {
	return action.Hooks{
		OnStart: func(ctx context.Context, name, requestID string) {
			tracer.start(ctx, name, requestID)
		},
		OnEnd: func(ctx context.Context, name, requestID string, d time.Duration, err error) {
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			m.invocations.WithLabelValues(name, outcome).Inc()
			m.duration.WithLabelValues(name).Observe(d.Seconds())
			tracer.end(name, requestID, d, err)
		},
	}
}
