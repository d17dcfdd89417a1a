// Package stream is the delivery layer between an engine cursor and a
// consumer. It paces events per type so a trace is watchable in real time,
// preserves the engine's emission order exactly, and stops driving the
// cursor promptly when the consumer's context is cancelled.
package stream

import (
	"context"
	"time"

	"github.com/dd0wney/searchscope/pkg/engine"
)

// DelayPolicy maps an event type to the pause taken after forwarding it.
// Types absent from the policy are forwarded without delay.
type DelayPolicy map[engine.EventType]time.Duration

// DefaultDelayPolicy paces a trace for human viewing: a long beat after
// init, short beats after each dequeue cycle, and no delay on expand,
// solution or the terminal event.
func DefaultDelayPolicy() DelayPolicy {
	return DelayPolicy{
		engine.EventInit:          400 * time.Millisecond,
		engine.EventProcessing:    50 * time.Millisecond,
		engine.EventBatchComplete: 20 * time.Millisecond,
	}
}

// Sink receives each forwarded event. A non-nil error stops the pump and
// is returned to the caller.
type Sink[N comparable] func(engine.Event[N]) error

// Pump drives the cursor one event at a time, forwarding each event to the
// sink in emission order and sleeping per the policy. It returns nil when
// the cursor is exhausted, ctx.Err() on cancellation, or the sink's error.
// Cancellation between steps means the remaining search is never run.
func Pump[N comparable](ctx context.Context, cur *engine.Cursor[N], policy DelayPolicy, sink Sink[N]) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev, ok := cur.Next()
		if !ok {
			return nil
		}
		if err := sink(ev); err != nil {
			return err
		}

		if delay := policy[ev.Type]; delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
}

// Collect drains a cursor into a slice with no pacing. Intended for tests
// and offline consumers that want the whole trace at once.
func Collect[N comparable](cur *engine.Cursor[N]) []engine.Event[N] {
	events := make([]engine.Event[N], 0)
	for {
		ev, ok := cur.Next()
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}
