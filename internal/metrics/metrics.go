package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the search service.
//
// Metrics:
//   - reposearch_http_requests_total{method, route, status} - inbound requests
//   - reposearch_upstream_requests_total{outcome} - GitHub calls by outcome
//   - reposearch_upstream_request_duration_seconds{outcome} - GitHub call latency
type Metrics struct {
	HTTPRequestsTotal *prometheus.CounterVec

	UpstreamRequestsTotal *prometheus.CounterVec
	UpstreamDuration      *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg.
// Pass a fresh prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reposearch_http_requests_total",
				Help: "Total inbound HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reposearch_upstream_requests_total",
				Help: "Total GitHub search calls by outcome",
			},
			[]string{"outcome"}, // "success" or an error kind
		),

		UpstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reposearch_upstream_request_duration_seconds",
				Help:    "GitHub search call duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"outcome"},
		),
	}
}

// ObserveUpstream records one upstream call. Safe on a nil receiver.
func (m *Metrics) ObserveUpstream(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequestsTotal.WithLabelValues(outcome).Inc()
	m.UpstreamDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveRequest records one inbound request. Safe on a nil receiver.
func (m *Metrics) ObserveRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}
