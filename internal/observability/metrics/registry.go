// Package metrics holds the application's business and storage Prometheus
// metrics. HTTP request metrics live with the HTTP middleware.
//
// All metrics are registered with the default registry and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Storage metrics
var (
	// DBQueryDuration measures post store statement latency by operation and outcome
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Post store statement duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation", "outcome"},
	)
)

// Business metrics
var (
	// PostOperationsTotal counts post use-case calls by operation and outcome
	// (ok, not_found, error).
	PostOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_post_operations_total",
			Help: "Total number of post operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	// SuggestionRequestsTotal counts suggestion requests by provider and outcome
	SuggestionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_suggestion_requests_total",
			Help: "Total number of suggestion requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	// SuggestionDuration measures the outbound generative-text call
	SuggestionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_suggestion_duration_seconds",
			Help:    "Time spent waiting for the suggestion provider",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
		[]string{"provider"},
	)
)
