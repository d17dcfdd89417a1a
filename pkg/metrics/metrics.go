package metrics

import (
	"time"
)

// Traversal outcome labels.
const (
	OutcomeSolved    = "solved"
	OutcomeNoPath    = "no_path"
	OutcomeExhausted = "exhausted"
	OutcomeCancelled = "cancelled"
	OutcomeEmpty     = "empty"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncHTTPRequestsInFlight increments the in-flight request gauge
func (r *Registry) IncHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Inc()
}

// DecHTTPRequestsInFlight decrements the in-flight request gauge
func (r *Registry) DecHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Dec()
}

// RecordTraversal records one finished (or cancelled) traversal stream
func (r *Registry) RecordTraversal(problem, outcome string, duration time.Duration) {
	r.TraversalsTotal.WithLabelValues(problem, outcome).Inc()
	r.TraversalDuration.WithLabelValues(problem).Observe(duration.Seconds())
}

// RecordEvent counts one forwarded trace event
func (r *Registry) RecordEvent(problem, eventType string) {
	r.EventsEmittedTotal.WithLabelValues(problem, eventType).Inc()
}

// RecordRejected counts a request rejected for invalid problem input
func (r *Registry) RecordRejected(problem string) {
	r.RejectedProblems.WithLabelValues(problem).Inc()
}

// StreamStarted marks a delivery stream as active; call the returned
// function when delivery ends.
func (r *Registry) StreamStarted() func() {
	r.ActiveStreams.Inc()
	r.activeStreams.Add(1)
	return func() {
		r.ActiveStreams.Dec()
		r.activeStreams.Add(-1)
	}
}

// ActiveStreamCount returns the number of streams currently delivering
func (r *Registry) ActiveStreamCount() float64 {
	return float64(r.activeStreams.Load())
}
