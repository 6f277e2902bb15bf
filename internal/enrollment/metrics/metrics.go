package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the enrollment ledger.
type Metrics struct {
	Enrollments *prometheus.CounterVec
}

// New creates and registers enrollment metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Enrollments: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sportreg_enrollments_total",
			Help: "Enrollment attempts by outcome",
		}, []string{"outcome"}),
	}
}

// NewNop returns metrics backed by an isolated registry for tests.
func NewNop() *Metrics {
	factory := promauto.With(prometheus.NewRegistry())
	return &Metrics{
		Enrollments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sportreg_enrollments_total",
			Help: "Enrollment attempts by outcome",
		}, []string{"outcome"}),
	}
}
