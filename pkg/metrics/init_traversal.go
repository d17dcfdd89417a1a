package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTraversalMetrics() {
	r.TraversalsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchscope_traversals_total",
			Help: "Total number of traversals by problem variant and outcome",
		},
		[]string{"problem", "outcome"},
	)

	r.TraversalDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "searchscope_traversal_duration_seconds",
			Help:    "Wall-clock duration of a streamed traversal, pacing included",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		},
		[]string{"problem"},
	)

	r.EventsEmittedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchscope_events_emitted_total",
			Help: "Total trace events forwarded to consumers, by event type",
		},
		[]string{"problem", "type"},
	)

	r.ActiveStreams = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "searchscope_active_streams",
			Help: "Traversal event streams currently being delivered",
		},
	)

	r.RejectedProblems = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchscope_rejected_problems_total",
			Help: "Requests rejected before traversal for invalid problem input",
		},
		[]string{"problem"},
	)
}
