package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// MetricsRecorder is the subset of the metrics registry the HTTP
// middleware needs. Satisfied by *metrics.Registry.
type MetricsRecorder interface {
	RecordHTTPRequest(method, path, status string, duration time.Duration)
	IncHTTPRequestsInFlight()
	DecHTTPRequestsInFlight()
}

// Metrics creates middleware that records request counts, latencies and
// in-flight gauge for every request.
func Metrics(recorder MetricsRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder.IncHTTPRequestsInFlight()
			defer recorder.DecHTTPRequestsInFlight()

			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			recorder.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(status), time.Since(start))
		})
	}
}
