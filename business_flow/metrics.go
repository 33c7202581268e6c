package businessflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Accepted submissions
	formSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Total number of form submissions persisted",
		},
	)

	// Submissions rejected by the duplicate guard or the storage uniqueness constraint
	formDuplicateSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "form_duplicate_submissions_total",
			Help: "Total number of form submissions rejected as duplicates",
		},
	)

	// Failed allocations partitioned by sequence name
	sequenceAllocationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sequence_allocation_failures_total",
			Help: "Total number of failed sequence allocations",
		},
		[]string{"sequence"},
	)

	// Admin login attempts partitioned by outcome
	adminLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_logins_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"result"},
	)
)
