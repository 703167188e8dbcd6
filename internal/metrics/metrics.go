// Package metrics holds the prometheus collectors of the sync client and
// the remote store server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sync pass directions.
const (
	DirectionPush = "push"
	DirectionPull = "pull"
)

// Sync pass results.
const (
	ResultSuccess   = "success"
	ResultExhausted = "exhausted"
	ResultSkipped   = "skipped"
)

var (
	// SyncPassesTotal counts finished push/pull passes by result.
	SyncPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studysync_sync_passes_total",
			Help: "Total number of sync passes by direction and result",
		},
		[]string{"direction", "result"},
	)

	// SyncPassDurationSeconds measures a whole pass including retry waits.
	SyncPassDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studysync_sync_pass_duration_seconds",
			Help:    "Duration of sync passes including backoff waits",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"direction"},
	)

	// DomainSkippedTotal counts domains left out of a pass (nothing to
	// push, nothing remote, or an undecodable payload).
	DomainSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studysync_domain_skipped_total",
			Help: "Total number of domains skipped within a sync pass",
		},
		[]string{"direction", "domain"},
	)

	// HTTPRequestsTotal counts remote store requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studysync_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDurationSeconds measures remote store request latency.
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studysync_http_request_duration_seconds",
			Help:    "Latency of HTTP requests served",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// ObserveSyncPass records one finished pass.
func ObserveSyncPass(direction, result string, elapsed time.Duration) {
	SyncPassesTotal.WithLabelValues(direction, result).Inc()
	SyncPassDurationSeconds.WithLabelValues(direction).Observe(elapsed.Seconds())
}

// IncDomainSkipped records a domain skipped within a pass.
func IncDomainSkipped(direction, domainID string) {
	DomainSkippedTotal.WithLabelValues(direction, domainID).Inc()
}

// ObserveHTTPRequest records one served request. route is the matched
// pattern, not the raw path.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
