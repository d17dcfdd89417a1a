package stream

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dd0wney/searchscope/pkg/engine"
	"github.com/dd0wney/searchscope/pkg/maze"
)

func testMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.New([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("maze.New: %v", err)
	}
	return m
}

func TestPumpPreservesOrder(t *testing.T) {
	m := testMaze(t)

	want := Collect(m.Solve())

	got := make([]engine.Event[maze.Cell], 0, len(want))
	err := Pump(context.Background(), m.Solve(), DelayPolicy{}, func(ev engine.Event[maze.Cell]) error {
		got = append(got, ev)
		return nil
	})
	if err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("pumped events differ from the cursor's emission order")
	}
}

func TestPumpStopsOnCancel(t *testing.T) {
	m := testMaze(t)
	ctx, cancel := context.WithCancel(context.Background())

	delivered := 0
	err := Pump(ctx, m.Solve(), DelayPolicy{}, func(engine.Event[maze.Cell]) error {
		delivered++
		if delivered == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Pump error = %v, want context.Canceled", err)
	}
	if delivered != 3 {
		t.Errorf("delivered %d events after cancel, want 3", delivered)
	}
}

func TestPumpCancelsDuringDelay(t *testing.T) {
	m := testMaze(t)
	ctx, cancel := context.WithCancel(context.Background())

	policy := DelayPolicy{engine.EventInit: time.Hour}
	done := make(chan error, 1)
	go func() {
		done <- Pump(ctx, m.Solve(), policy, func(engine.Event[maze.Cell]) error { return nil })
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Pump error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Pump did not stop promptly after cancellation")
	}
}

func TestPumpStopsOnSinkError(t *testing.T) {
	m := testMaze(t)
	sinkErr := errors.New("consumer went away")

	calls := 0
	err := Pump(context.Background(), m.Solve(), DelayPolicy{}, func(engine.Event[maze.Cell]) error {
		calls++
		return sinkErr
	})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("Pump error = %v, want sink error", err)
	}
	if calls != 1 {
		t.Errorf("sink called %d times after erroring, want 1", calls)
	}
}

func TestCollectEndsAfterTerminal(t *testing.T) {
	events := Collect(testMaze(t).Solve())
	if len(events) == 0 {
		t.Fatal("no events collected")
	}
	if events[len(events)-1].Type != engine.EventComplete {
		t.Errorf("last event = %s, want complete", events[len(events)-1].Type)
	}
	for _, ev := range events[:len(events)-1] {
		if ev.Type == engine.EventComplete {
			t.Error("complete emitted before end of trace")
		}
	}
}
