package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var (
	eventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gattshim",
			Subsystem: "dispatch",
			Name:      "events_total",
			Help:      "Events delivered to a registered handler",
		},
		[]string{"category"},
	)

	registrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gattshim",
			Subsystem: "dispatch",
			Name:      "registrations_total",
			Help:      "Handler registration attempts by result",
		},
		[]string{"category", "result"},
	)
)

func init() {
	prometheus.MustRegister(eventsTotal, registrationsTotal)
}

var zlog = zerolog.Nop()

// SetLogger installs a structured logger for registry events.
func SetLogger(l zerolog.Logger) { zlog = l }
