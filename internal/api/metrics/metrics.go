// Package metrics defines and registers all custom Prometheus metrics for the
// Refugiart Bazar API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "refugiart"

// ── Purchase metrics ──────────────────────────────────────────────────────────

// PurchasesCompletedTotal counts purchases that committed successfully.
var PurchasesCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_completed_total",
		Help:      "Total number of completed artwork purchases.",
	},
)

// PurchasesRejectedTotal counts purchases that failed a precondition or lost
// a race.
// Label:
//   - reason: "not_found", "unavailable", "self_purchase", "insufficient_balance", "conflict", "error"
var PurchasesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_rejected_total",
		Help:      "Total number of rejected purchase attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Social metrics ────────────────────────────────────────────────────────────

// LikesToggledTotal counts like toggles by resulting state.
// Label:
//   - state: "on" (like created) or "off" (like removed)
var LikesToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_toggled_total",
		Help:      "Total number of like toggles, by resulting state (on/off).",
	},
	[]string{"state"},
)

// FollowsToggledTotal counts follow toggles by resulting state.
// Label:
//   - state: "on" (follow created) or "off" (follow removed)
var FollowsToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "follows_toggled_total",
		Help:      "Total number of follow toggles, by resulting state (on/off).",
	},
	[]string{"state"},
)

// ── Artwork metrics ───────────────────────────────────────────────────────────

// ArtworkViewsTotal counts artwork detail fetches that recorded a view.
var ArtworkViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artwork_views_total",
		Help:      "Total number of artwork detail views recorded.",
	},
)
