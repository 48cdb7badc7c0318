package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "onboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Pipeline metrics
	TransitionsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboard_status_transitions_total",
			Help: "Total number of candidate status transitions",
		},
		[]string{"to"},
	)

	BlobOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "onboard_blob_operation_duration_seconds",
			Help:    "Duration of blob store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// TrackBlobOperation returns a deferred recorder for one blob operation.
func TrackBlobOperation(operation string) func(startTime time.Time) {
	return func(startTime time.Time) {
		BlobOperationDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
	}
}

// RecordTransition counts one successful status transition.
func RecordTransition(to string) {
	TransitionsCounter.WithLabelValues(to).Inc()
}
