// Package health tracks process-level health for the search service and
// exposes it over the usual /health, /health/ready and /health/live
// endpoints. Checks are registered per kind; the worst result wins.
package health

import (
	"sync"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// CheckKind routes a registered check to the endpoint that reports it.
type CheckKind int

const (
	// KindHealth checks feed /health; degraded still serves traffic.
	KindHealth CheckKind = iota
	// KindReadiness checks feed /health/ready; anything but healthy
	// means "send no new work".
	KindReadiness
	// KindLiveness checks feed /health/live; anything but healthy means
	// "restart me".
	KindLiveness
)

// Check represents a health check result for a specific component
type Check struct {
	Name        string         `json:"name"`
	Status      Status         `json:"status"`
	Message     string         `json:"message,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	LastChecked time.Time      `json:"last_checked"`
	Duration    time.Duration  `json:"duration_ms"`
}

// CheckFunc is a function that performs a health check
type CheckFunc func() Check

// HealthChecker runs registered checks grouped by kind.
type HealthChecker struct {
	mu        sync.RWMutex
	checks    map[CheckKind]map[string]CheckFunc
	startTime time.Time
}

// Response represents the aggregated result of one kind's checks.
type Response struct {
	Status    Status           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
	Uptime    time.Duration    `json:"uptime_seconds"`
}
