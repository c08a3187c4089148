// Package metrics defines and registers all custom Prometheus metrics for the
// payment backend. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at import time
// via promauto; exposing them only requires mounting promhttp.Handler().
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clerc"

// ── Session metrics ───────────────────────────────────────────────────────────

// TokensIssuedTotal counts session tokens successfully issued.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens successfully issued.",
	},
)

// ── Charge metrics ────────────────────────────────────────────────────────────

// ChargesTotal counts charge attempts by outcome.
// Label:
//   - status: "succeeded", "pending", or "declined"
var ChargesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charges_total",
		Help:      "Total number of charge attempts, labelled by outcome.",
	},
	[]string{"status"},
)

// ChargeDuration measures how long a charge takes end-to-end, including the
// round trip to the payment gateway.
var ChargeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "charge_duration_seconds",
		Help:      "Duration of charge handling from request to gateway response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Vendor metrics ────────────────────────────────────────────────────────────

// VendorsConnectedTotal counts vendors that completed Connect onboarding.
var VendorsConnectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendors_connected_total",
		Help:      "Total number of vendors that completed Connect account onboarding.",
	},
)
