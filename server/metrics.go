package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	operations *prometheus.CounterVec
	parts      prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chordgrid",
			Name:      "operations_total",
			Help:      "Grid operations by name and outcome.",
		}, []string{"op", "outcome"}),
		parts: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "chordgrid",
			Name:      "parts",
			Help:      "Number of parts in the song.",
		}),
	}
}

func (m *metrics) observe(op string, applied bool) {
	outcome := "applied"
	if !applied {
		outcome = "rejected"
	}
	m.operations.WithLabelValues(op, outcome).Inc()
}
