// Package metrics defines and registers the custom Prometheus metrics of the
// blog API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry on package init
// through promauto; HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// ── Account metrics ──────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Content metrics ──────────────────────────────────────────────────────────

// ContentCreatedTotal counts created resources.
// Label:
//   - resource: "post", "comment" or "category"
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_created_total",
		Help:      "Total number of resources created, by resource type.",
	},
	[]string{"resource"},
)

// ContentDeletedTotal counts deleted resources.
// Label:
//   - resource: "post", "comment" or "category"
var ContentDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_deleted_total",
		Help:      "Total number of resources deleted, by resource type.",
	},
	[]string{"resource"},
)

// ── Authorization metrics ────────────────────────────────────────────────────

// AuthDenialsTotal counts rejected requests.
// Label:
//   - reason: "unauthenticated", "invalid_token", "invalid_credentials" or "forbidden"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

const (
	ResourcePost     = "post"
	ResourceComment  = "comment"
	ResourceCategory = "category"
)
