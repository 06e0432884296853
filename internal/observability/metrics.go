// Package observability provides metrics and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anondo_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "anondo_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// EventsCreatedTotal counts created events.
	EventsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anondo_events_created_total",
		Help: "Total number of events created",
	})

	// EventJoinOutcomes counts join attempts by outcome (joined, event_full,
	// already_joined, ...).
	EventJoinOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anondo_event_join_outcomes_total",
		Help: "Total number of event join attempts by outcome",
	}, []string{"outcome"})

	// CommentsPostedTotal counts posted comments.
	CommentsPostedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anondo_comments_posted_total",
		Help: "Total number of comments posted",
	})
)
