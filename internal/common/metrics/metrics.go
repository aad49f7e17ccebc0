// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbound_messages_saved_total",
			Help: "Total number of outbound messages persisted to the log",
		},
		[]string{"type"},
	)

	EmailsRelayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emails_relayed_total",
			Help: "Total number of emails accepted by the provider",
		},
	)

	EmailRelayFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_relay_failures_total",
			Help: "Total number of failed email relay attempts",
		},
		[]string{"reason"},
	)

	NotificationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_created_total",
			Help: "Total number of notifications added to the center",
		},
		[]string{"type"},
	)

	AssistantQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Total number of health assistant queries by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "path", "status"},
	)
)
