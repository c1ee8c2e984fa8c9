package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_recorded_total",
			Help: "Funnel touches recorded, by stage and whether the stage advanced",
		},
		[]string{"stage", "advanced"},
	)

	subscriberTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriber_transitions_total",
			Help: "Subscriber status transitions applied",
		},
		[]string{"from", "to"},
	)

	billingWebhooks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billing_webhooks_total",
			Help: "Billing webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Outbound notifications by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)
)

// ObserveHTTPRequest records one served request. Unmatched routes share the "unmatched" path label.
func ObserveHTTPRequest(method, path string, status int, latency time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
}

func RecordLeadTouch(stage string, advanced bool) {
	leadsRecorded.WithLabelValues(stage, strconv.FormatBool(advanced)).Inc()
}

func RecordSubscriberTransition(from, to string) {
	subscriberTransitions.WithLabelValues(from, to).Inc()
}

func RecordBillingWebhook(outcome string) {
	billingWebhooks.WithLabelValues(outcome).Inc()
}

func RecordNotification(channel, outcome string) {
	notifications.WithLabelValues(channel, outcome).Inc()
}
