package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for registration and login flows.
type Metrics struct {
	Registrations *prometheus.CounterVec
	Logins        *prometheus.CounterVec
}

// New creates and registers identity metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Registrations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sportreg_registrations_total",
			Help: "Registrations by role and outcome",
		}, []string{"role", "outcome"}),
		Logins: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sportreg_logins_total",
			Help: "Login attempts by role and outcome",
		}, []string{"role", "outcome"}),
	}
}

// NewNop returns metrics backed by an isolated registry, for tests that
// construct the service repeatedly.
func NewNop() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sportreg_registrations_total",
			Help: "Registrations by role and outcome",
		}, []string{"role", "outcome"}),
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sportreg_logins_total",
			Help: "Login attempts by role and outcome",
		}, []string{"role", "outcome"}),
	}
}
