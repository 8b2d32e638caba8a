package monitor

import "github.com/prometheus/client_golang/prometheus"

var (
	buffered = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gattshim",
		Subsystem: "monitor",
		Name:      "buffered_events",
		Help:      "Events currently held by the recorder",
	})

	overwrittenTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gattshim",
		Subsystem: "monitor",
		Name:      "overwritten_events_total",
		Help:      "Events evicted from the recorder ring",
	})
)

func init() {
	prometheus.MustRegister(buffered, overwrittenTotal)
}
