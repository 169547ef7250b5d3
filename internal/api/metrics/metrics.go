// Package metrics defines and registers all custom Prometheus metrics for the
// GramSetu complaints API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gramsetu"

// ComplaintsCreatedTotal counts successfully filed complaints.
// Label:
//   - category: the complaint category supplied by the citizen (e.g. "roads")
var ComplaintsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_created_total",
		Help:      "Total number of complaints created, by category.",
	},
	[]string{"category"},
)

// ComplaintsDeletedTotal counts complaints physically removed via the API.
var ComplaintsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_deleted_total",
		Help:      "Total number of complaints deleted.",
	},
)

// ReputationUpsertsTotal counts reputation side-effect outcomes.
// Label:
//   - result: "ok" or "error"
var ReputationUpsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reputation_upserts_total",
		Help:      "Total number of reputation upsert attempts, by result.",
	},
	[]string{"result"},
)
