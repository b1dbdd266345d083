package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors. Each Metrics owns its
// registry so several servers can live in one process.
type Metrics struct {
	registry *prometheus.Registry

	// requestsTotal counts HTTP requests by route and status code
	requestsTotal *prometheus.CounterVec

	// searchDuration tracks engine latency per algorithm
	searchDuration *prometheus.HistogramVec

	// searchOps tracks fringe operations per algorithm
	searchOps *prometheus.HistogramVec

	// searchErrors counts rejected or failed searches
	searchErrors *prometheus.CounterVec

	// graphCache counts HPA abstract graph lookups by result
	graphCache *prometheus.CounterVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		}, []string{"route", "code"}),
		searchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 16), // 50µs to ~1.6s
		}, []string{"algorithm"}),
		searchOps: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_ops",
			Help:    "Fringe pushes plus pops per search",
			Buckets: prometheus.ExponentialBuckets(4, 4, 10),
		}, []string{"algorithm"}),
		searchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_search_errors_total",
			Help: "Total failed searches by error type",
		}, []string{"error_type"}),
		graphCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_hpa_graph_cache_total",
			Help: "HPA abstract graph cache lookups by result",
		}, []string{"result"}), // "hit" or "miss"
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) observeRequest(route string, status int) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
