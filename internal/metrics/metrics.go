// Package metrics defines the custom Prometheus metrics of the user
// management service. HTTP request metrics come from the echoprometheus
// middleware; these cover domain outcomes recorded by the managers and
// handlers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_management"

// Entity label values.
const (
	EntityCustomer = "customer"
	EntityEmployee = "employee"
)

// EntitiesCreatedTotal counts customers and employees persisted.
// Label:
//   - entity: EntityCustomer or EntityEmployee
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of customers and employees created.",
	},
	[]string{"entity"},
)

// RejectionsTotal counts HTTP requests answered with an error response
// instead of a result.
// Labels:
//   - entity: "customer" or "employee"
//   - reason: "validation" or "not_found"
var RejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejections_total",
		Help:      "Total number of requests rejected by the managers, by reason.",
	},
	[]string{"entity", "reason"},
)

// ValidationFailuresTotal counts entity validation failures seen by the
// managers, whether converted into an error response or returned to the caller.
// Labels:
//   - entity: "customer" or "employee"
//   - kind:   the broken rule (e.g. "invalid_cpf")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of customer and employee validation failures, by kind.",
	},
	[]string{"entity", "kind"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// IdempotentReplaysTotal counts requests refused because their
// Idempotency-Key was already in use.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests refused as replays.",
	},
)
