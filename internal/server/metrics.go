package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the Prometheus instruments for the HTTP boundary. Each
// Server owns its instance and registry, so tests can spin up servers
// without duplicate-registration panics.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimitedHits prometheus.Counter
	ComputeFailures prometheus.Counter
}

// NewMetrics creates and registers the instrument set on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lifeclock",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests handled, by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lifeclock",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		RateLimitedHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lifeclock",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-IP rate limiter.",
		}),
		ComputeFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lifeclock",
			Subsystem: "engine",
			Name:      "compute_failures_total",
			Help:      "Panics recovered while computing an age breakdown.",
		}),
	}
}
