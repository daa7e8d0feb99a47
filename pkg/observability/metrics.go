package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/switchboard/pkg/domain"
)

// Metrics tracks tool dispatch activity with Prometheus collectors.
// Each instance owns its own registry, so several servers in one
// process never trip duplicate registration.
type Metrics struct {
	registry  *prometheus.Registry
	calls     *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewMetrics creates the dispatch collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "switchboard_tool_calls_total",
				Help: "Total number of tool dispatches",
			},
			[]string{"tool"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "switchboard_tool_failures_total",
				Help: "Total number of dispatches that produced an error result",
			},
			[]string{"tool"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "switchboard_tool_duration_seconds",
				Help: "Duration of tool dispatches",
			},
			[]string{"tool"},
		),
	}
	m.registry.MustRegister(m.calls, m.failures, m.durations)
	return m
}

// Hooks returns dispatch hooks that feed the collectors. The call hook
// counts every dispatch that reaches validation; the return hook records
// duration and failures.
func (m *Metrics) Hooks() domain.DispatchHooks {
	return domain.DispatchHooks{
		OnToolCall: func(_ context.Context, e *domain.ToolEvent) {
			m.calls.WithLabelValues(e.ToolName).Inc()
		},
		OnToolReturn: func(_ context.Context, e *domain.ToolEvent) {
			m.durations.WithLabelValues(e.ToolName).Observe(e.Duration.Seconds())
			if e.IsError {
				m.failures.WithLabelValues(e.ToolName).Inc()
			}
		},
	}
}

// Handler serves the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
