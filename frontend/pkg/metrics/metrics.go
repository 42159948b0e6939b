// pkg/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for backend fetches.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the Prometheus collectors for the frontend. Each instance
// owns its registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests         *prometheus.CounterVec
	BackendFetches       *prometheus.CounterVec
	BackendFetchDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frontend_http_requests_total",
			Help: "Total number of HTTP requests served, by method, route pattern and status",
		}, []string{"method", "route", "status"}),
		BackendFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frontend_backend_fetch_total",
			Help: "Total number of backend /api/data fetches, by outcome",
		}, []string{"outcome"}),
		BackendFetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "frontend_backend_fetch_duration_seconds",
			Help:    "Latency of backend /api/data fetches",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveRequest counts one served request.
func (m *Metrics) ObserveRequest(method, route string, status int) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// ObserveBackendFetch records the outcome and latency of one backend call.
func (m *Metrics) ObserveBackendFetch(outcome string, elapsed time.Duration) {
	m.BackendFetches.WithLabelValues(outcome).Inc()
	m.BackendFetchDuration.Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
