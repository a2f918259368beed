package orrery

import "github.com/prometheus/client_golang/prometheus"

var (
	propagationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orrery_propagations_total",
			Help: "Total number of body position propagations.",
		},
		[]string{"body", "mode"},
	)

	keplerNonConvergedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orrery_kepler_nonconverged_total",
			Help: "Kepler solves that hit the iteration cap without converging.",
		},
	)

	positionFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orrery_position_fallbacks_total",
			Help: "Propagation failures substituted with the last known good position.",
		},
		[]string{"body"},
	)
)

func init() {
	prometheus.MustRegister(propagationsTotal)
	prometheus.MustRegister(keplerNonConvergedTotal)
	prometheus.MustRegister(positionFallbacksTotal)
}
