// Package metrics holds the Prometheus instruments used across the service.
// Collectors are registered with the global registry, so importing this
// package is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes, one per terminal state of the quotation pipeline.
const (
	OutcomeRelayed       = "relayed"
	OutcomeRejected      = "rejected"
	OutcomeMisconfigured = "misconfigured"
	OutcomeUpstreamError = "upstream_error"
	OutcomeInternalError = "internal_error"
)

var (
	QuotationSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotation_submissions_total",
			Help: "Quotation submissions handled, labelled by terminal outcome.",
		},
		[]string{"outcome"},
	)

	WebhookRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "webhook_request_duration_seconds",
			Help:    "Duration of outbound calls to the reservations webhook.",
			Buckets: prometheus.DefBuckets,
		})
)

func init() {
	prometheus.MustRegister(
		QuotationSubmissions,
		WebhookRequestDuration,
	)
}
