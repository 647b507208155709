// Package metrics exposes the nomination engine's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sevigo/quality-warden/internal/core"
)

const namespace = "quality"

// Metrics groups the collectors updated by the nomination service.
type Metrics struct {
	NominationsCreated  *prometheus.CounterVec
	ReviewerAssignments prometheus.Counter
	Failures            *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		NominationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nominations_created_total",
			Help:      "Nominations stored, by kind.",
		}, []string{"kind"}),
		ReviewerAssignments: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviewer_assignments_total",
			Help:      "Reviewer assignments recorded for new nominations.",
		}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nomination_failures_total",
			Help:      "Rejected or failed nomination operations, by operation and error kind.",
		}, []string{"operation", "kind"}),
	}
}

// ObserveCreated records a stored nomination and its assignments.
func (m *Metrics) ObserveCreated(kind core.Kind, reviewers int) {
	m.NominationsCreated.WithLabelValues(string(kind)).Inc()
	m.ReviewerAssignments.Add(float64(reviewers))
}

// ObserveFailure records a failed operation under the kind of err.
func (m *Metrics) ObserveFailure(operation string, err error) {
	m.Failures.WithLabelValues(operation, string(core.AsError(err).Kind)).Inc()
}
