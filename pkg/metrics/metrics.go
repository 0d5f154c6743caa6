package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	// RequestDuration is the latency of HTTP requests.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roster_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// QueriesTotal counts person queries by outcome code ("ok" or an error code).
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_queries_total",
			Help: "Total number of person queries",
		},
		[]string{"outcome"},
	)
	// QueryDuration is the end-to-end latency of a person query.
	QueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roster_query_duration_seconds",
			Help:    "Person query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
	// QueryMatches observes how many records passed the filter.
	QueryMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roster_query_matches",
			Help:    "Number of records matching a query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
	// SnapshotCacheTotal counts snapshot cache lookups by result.
	SnapshotCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_snapshot_cache_total",
			Help: "Snapshot cache lookups by result",
		},
		[]string{"result"},
	)
	// BreakerState is the current circuit state per breaker (0 closed, 1 open, 2 half-open).
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roster_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// ObserveQuery records one finished query.
func ObserveQuery(outcome string, seconds float64, matches int) {
	if outcome == "" {
		outcome = "unknown"
	}
	QueriesTotal.WithLabelValues(outcome).Inc()
	QueryDuration.Observe(seconds)
	if matches >= 0 {
		QueryMatches.Observe(float64(matches))
	}
}

// Handler returns the Prometheus HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DependencyUp is 1 while a monitored dependency passes its health probe.
var DependencyUp = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "roster_dependency_up",
		Help: "Whether a monitored dependency is reachable (1) or not (0)",
	},
	[]string{"name"},
)
