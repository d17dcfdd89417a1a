package health

import (
	"time"
)

// NewHealthChecker creates a health checker with no checks registered.
// A kind with no checks reports healthy.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks:    make(map[CheckKind]map[string]CheckFunc),
		startTime: time.Now(),
	}
}

// Register adds a named check under the given kind, replacing any
// previous check with the same name.
func (hc *HealthChecker) Register(kind CheckKind, name string, check CheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	if hc.checks[kind] == nil {
		hc.checks[kind] = make(map[string]CheckFunc)
	}
	hc.checks[kind][name] = check
}

// Run executes every check of the given kind and aggregates the results.
// The worst individual status becomes the response status.
func (hc *HealthChecker) Run(kind CheckKind) Response {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	response := Response{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Checks:    make(map[string]Check),
		Uptime:    time.Since(hc.startTime),
	}

	for name, checkFunc := range hc.checks[kind] {
		start := time.Now()
		check := checkFunc()
		check.Duration = time.Since(start)
		check.LastChecked = start

		response.Checks[name] = check

		if check.Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
		} else if check.Status == StatusDegraded && response.Status != StatusUnhealthy {
			response.Status = StatusDegraded
		}
	}

	return response
}
