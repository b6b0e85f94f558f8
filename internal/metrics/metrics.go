// Package metrics holds the storefront's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Checkout outcomes.
const (
	OutcomeVerified    = "verified"
	OutcomeRejected    = "rejected"
	OutcomeError       = "error"
	OutcomeInvalidForm = "invalid_form"
)

var (
	CheckoutSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stylehive",
		Name:      "checkout_submissions_total",
		Help:      "Checkout submissions by outcome.",
	}, []string{"outcome"})

	VerificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stylehive",
		Name:      "receipt_verification_duration_seconds",
		Help:      "Time spent waiting on the receipt verifier.",
		Buckets:   prometheus.DefBuckets,
	})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stylehive",
		Name:      "orders_created_total",
		Help:      "Orders written to an order store.",
	})

	OrderStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stylehive",
		Name:      "order_status_updates_total",
		Help:      "Order status changes by target status.",
	}, []string{"status"})

	ConfirmationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stylehive",
		Name:      "confirmation_failures_total",
		Help:      "Order confirmations the notifier failed to deliver.",
	})
)
