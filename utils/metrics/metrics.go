package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ConflictChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "item_location",
		Name:      "conflict_checks_total",
		Help:      "Conflict checks by outcome.",
	}, []string{"outcome"})

	Assignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "item_location",
		Name:      "assignments_total",
		Help:      "Assignment writes by mode and result.",
	}, []string{"mode", "result"})

	Deletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "item_location",
		Name:      "assignment_deletions_total",
		Help:      "Deleted assignment rows by operation.",
	}, []string{"operation"})

	Leases = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "item_location",
		Name:      "location_leases_total",
		Help:      "Lease operations by action and result.",
	}, []string{"action", "result"})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
