// Package metrics exposes the Prometheus counters of the service. They are
// registered on the default registry and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vetpickup_requests_created_total",
		Help: "Total number of pickup requests successfully registered.",
	})

	// AssignmentsTotal counts assignment attempts by outcome: assigned,
	// already_assigned or no_eligible_courier.
	AssignmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vetpickup_assignments_total",
		Help: "Total number of courier assignment attempts by outcome.",
	},
		[]string{"outcome"},
	)

	RequestTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vetpickup_request_transitions_total",
		Help: "Total number of requests moved to a terminal status.",
	},
		[]string{"status"},
	)

	BookingsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vetpickup_bookings_rejected_total",
		Help: "Total number of request registrations refused outside the booking window.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vetpickup_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	IncompleteRequesters = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vetpickup_incomplete_requesters",
		Help: "Number of requesters with unknown contact data at the last report.",
	})
)
