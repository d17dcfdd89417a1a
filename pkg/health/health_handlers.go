package health

import (
	"encoding/json"
	"net/http"
)

// HTTPHandler serves the full health report. Degraded still answers 200:
// the process serves traffic, just not comfortably.
func (hc *HealthChecker) HTTPHandler() http.HandlerFunc {
	return hc.serve(KindHealth, false)
}

// ReadinessHandler serves the readiness report; binary.
func (hc *HealthChecker) ReadinessHandler() http.HandlerFunc {
	return hc.serve(KindReadiness, true)
}

// LivenessHandler serves the liveness report; binary.
func (hc *HealthChecker) LivenessHandler() http.HandlerFunc {
	return hc.serve(KindLiveness, true)
}

// serve runs one kind's checks per request. Binary endpoints treat any
// non-healthy aggregate as 503; the full report only 503s on unhealthy.
func (hc *HealthChecker) serve(kind CheckKind, binary bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := hc.Run(kind)

		code := http.StatusOK
		if response.Status == StatusUnhealthy || (binary && response.Status != StatusHealthy) {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(response)
	}
}
