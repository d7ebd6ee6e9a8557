package aegis

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	trajectoriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aegis_trajectories_total",
			Help: "Synchronized trajectory computations by outcome.",
		},
		[]string{"outcome"},
	)

	ephemerisFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aegis_ephemeris_fallbacks_total",
			Help: "Earth positions served by the circular fallback instead of the ephemeris.",
		},
	)

	deflectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aegis_deflections_total",
			Help: "Deflection simulations by outcome.",
		},
		[]string{"outcome"},
	)

	impactComputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aegis_impact_computations_total",
			Help: "Impact effect computations by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(trajectoriesTotal)
	prometheus.MustRegister(ephemerisFallbacksTotal)
	prometheus.MustRegister(deflectionsTotal)
	prometheus.MustRegister(impactComputationsTotal)
}

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// MetricsHandler returns the Prometheus metrics HTTP handler for
// embedding applications.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

func outcomeOf(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}
