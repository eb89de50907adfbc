// Package metrics defines and registers the custom Prometheus metrics of the
// myFlix API. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "myflix"

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts accounts created through POST /users.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered.",
	},
)

// UsersDeletedTotal counts deregistered accounts.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)

// ValidationFailuresTotal counts user writes rejected by the validation layer.
// Label:
//   - param: the offending field (e.g. "Username", "Email")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of violated validation rules, by field.",
	},
	[]string{"param"},
)

// FavouritesChangesTotal counts favourites updates.
// Label:
//   - action: "add" or "remove"
var FavouritesChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favourites_changes_total",
		Help:      "Total number of favourites list changes, by action.",
	},
	[]string{"action"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Movie cache metrics ───────────────────────────────────────────────────────

// MovieCacheRequestsTotal counts movie cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var MovieCacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movie_cache_requests_total",
		Help:      "Total number of movie cache lookups, labelled by result.",
	},
	[]string{"result"},
)
