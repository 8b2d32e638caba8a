package gatt

import "github.com/prometheus/client_golang/prometheus"

var (
	marshalEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gattshim",
			Subsystem: "marshal",
			Name:      "events_total",
			Help:      "Native callbacks converted into events",
		},
		[]string{"category", "event"},
	)

	facadeCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gattshim",
			Subsystem: "facade",
			Name:      "calls_total",
			Help:      "Calls forwarded to the native interfaces by admission status",
		},
		[]string{"interface", "op", "status"},
	)

	initTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gattshim",
			Subsystem: "lifecycle",
			Name:      "init_total",
			Help:      "Profile initializations by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(marshalEventsTotal, facadeCallsTotal, initTotal)
}
