package health

import (
	"fmt"
	"runtime"
)

// Stream load thresholds. Each active stream holds a frontier in memory
// and a paced goroutine, so saturation degrades before it breaks.
const (
	StreamLoadDegraded  = 64
	StreamLoadUnhealthy = 256
)

// AliveCheck creates a liveness check that always passes while the
// process can schedule goroutines.
func AliveCheck() CheckFunc {
	return func() Check {
		return Check{
			Name:    "alive",
			Status:  StatusHealthy,
			Message: "Process responsive",
		}
	}
}

// MemoryCheck creates a health check on Go heap usage. Long traversals
// with large frontiers show up here before they OOM.
func MemoryCheck() CheckFunc {
	return func() Check {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		check := Check{
			Name: "memory",
			Details: map[string]any{
				"alloc_bytes": m.Alloc,
				"sys_bytes":   m.Sys,
				"num_gc":      m.NumGC,
			},
		}

		usagePercent := float64(m.Alloc) / float64(m.Sys) * 100
		if usagePercent > 90 {
			check.Status = StatusDegraded
			check.Message = "High memory usage"
		} else {
			check.Status = StatusHealthy
			check.Message = "Memory usage normal"
		}

		return check
	}
}

// StreamLoadCheck creates a readiness check on the number of event
// streams currently delivering.
func StreamLoadCheck(activeStreams func() float64) CheckFunc {
	return func() Check {
		active := activeStreams()

		check := Check{
			Name:    "streams",
			Details: map[string]any{"active": active},
		}

		switch {
		case active >= StreamLoadUnhealthy:
			check.Status = StatusUnhealthy
			check.Message = fmt.Sprintf("%d active streams, refusing new work", int(active))
		case active >= StreamLoadDegraded:
			check.Status = StatusDegraded
			check.Message = fmt.Sprintf("%d active streams", int(active))
		default:
			check.Status = StatusHealthy
			check.Message = "Stream load normal"
		}

		return check
	}
}

// GoroutineCheck creates a health check on goroutine count. Streams
// leak goroutines only if delivery stops honouring cancellation, so a
// runaway count here points at a stuck sink.
func GoroutineCheck(limit int) CheckFunc {
	return func() Check {
		count := runtime.NumGoroutine()

		check := Check{
			Name:    "goroutines",
			Details: map[string]any{"count": count, "limit": limit},
		}

		if limit > 0 && count > limit {
			check.Status = StatusDegraded
			check.Message = fmt.Sprintf("%d goroutines exceeds limit %d", count, limit)
		} else {
			check.Status = StatusHealthy
			check.Message = "Goroutine count normal"
		}

		return check
	}
}
