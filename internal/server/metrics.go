package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records tool call counts and latencies in a private registry.
type Metrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	server   string
}

// Default histogram buckets for tool latencies (in seconds). Screenshots and
// editor round trips run into whole seconds.
var toolLatencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20,
}

// NewMetrics creates the metric families for the named server.
func NewMetrics(server string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		server:   server,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_tool_calls_total",
			Help: "Tool calls handled, by outcome.",
		}, []string{"server", "tool", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bridge_tool_call_duration_seconds",
			Help:    "Tool call latency.",
			Buckets: toolLatencyBuckets,
		}, []string{"server", "tool"}),
	}
	m.registry.MustRegister(m.calls, m.duration)
	return m
}

// Observe records one finished call.
func (m *Metrics) Observe(tool, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(m.server, tool, outcome).Inc()
	m.duration.WithLabelValues(m.server, tool).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
