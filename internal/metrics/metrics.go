// Package metrics provides the centralized Prometheus registry for the
// research console.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	APIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edge_lab",
		Name:      "api_requests_total",
		Help:      "Total API requests by resource and outcome",
	}, []string{"resource", "outcome"})
	AuthFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "edge_lab",
		Name:      "auth_failures_total",
		Help:      "Total 401 responses that invalidated the session",
	})
	SnapshotPollsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edge_lab",
		Name:      "snapshot_polls_total",
		Help:      "Analytics snapshot poll attempts by result",
	}, []string{"result"})
	LabelCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edge_lab",
		Name:      "label_cache_total",
		Help:      "Variant/system label cache lookups by result",
	}, []string{"result"})
)

// Gauge metrics
var (
	OpenRuns = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "edge_lab",
		Name:      "open_runs",
		Help:      "Open runs seen in the last runs listing",
	})
	DirtySnapshots = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "edge_lab",
		Name:      "dirty_snapshots",
		Help:      "Runs whose analytics snapshot is stale relative to trades",
	})
)

// Histogram metrics
var (
	APIRequestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "edge_lab",
		Name:      "api_request_latency_seconds",
		Help:      "Latency of API requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(APIRequestsTotal)
		registry.MustRegister(AuthFailuresTotal)
		registry.MustRegister(SnapshotPollsTotal)
		registry.MustRegister(LabelCacheTotal)

		registry.MustRegister(OpenRuns)
		registry.MustRegister(DirtySnapshots)

		registry.MustRegister(APIRequestLatency)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordRequest records one API call outcome with its latency.
func RecordRequest(resource, outcome string, seconds float64) {
	APIRequestsTotal.WithLabelValues(resource, outcome).Inc()
	APIRequestLatency.WithLabelValues(resource).Observe(seconds)
}
