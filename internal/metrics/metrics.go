// Package metrics provides Prometheus metrics for the blog API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency by route template.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "blog",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// PostOperationsTotal counts post store operations by outcome.
	PostOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "post_operations_total",
			Help:      "Total number of post operations",
		},
		[]string{"operation", "result"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
	)

	// MediaBytesTotal sums the size of uploaded media.
	MediaBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "blog",
			Name:      "media_uploaded_bytes_total",
			Help:      "Total bytes of uploaded media",
		},
	)
)

// RecordRequest records one handled HTTP request.
func RecordRequest(method, route string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordPostOperation records the outcome of a post operation.
func RecordPostOperation(operation, result string) {
	PostOperationsTotal.WithLabelValues(operation, result).Inc()
}
