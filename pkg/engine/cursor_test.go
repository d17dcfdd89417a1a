package engine

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

// chainAdapter is a bidirectional chain 0..last; goal is reaching last.
type chainAdapter struct {
	last int
}

func (a chainAdapter) Start() int { return 0 }

func (a chainAdapter) Neighbors(path Path[int]) []int {
	node := path.Last()
	neighbors := make([]int, 0, 2)
	if node > 0 {
		neighbors = append(neighbors, node-1)
	}
	if node < a.last {
		neighbors = append(neighbors, node+1)
	}
	return neighbors
}

func (a chainAdapter) IsGoal(path Path[int]) bool { return path.Last() == a.last }

// loopAdapter never reaches a goal and never runs out of neighbors.
type loopAdapter struct{}

func (loopAdapter) Start() int                { return 0 }
func (loopAdapter) Neighbors(Path[int]) []int { return []int{0} }
func (loopAdapter) IsGoal(Path[int]) bool     { return false }

// pickAdapter explores orderings of 0..n-1 with a path-local visited rule,
// like the route planner, and charges each complete ordering its last node
// as cost. Lowest achievable cost is 1 (ordering ending in node 1, since
// node 0 is always first).
type pickAdapter struct {
	n int
}

func (a pickAdapter) Start() int { return 0 }

func (a pickAdapter) Neighbors(path Path[int]) []int {
	neighbors := make([]int, 0, a.n)
	for i := 0; i < a.n; i++ {
		if !path.Contains(i) {
			neighbors = append(neighbors, i)
		}
	}
	return neighbors
}

func (a pickAdapter) IsGoal(path Path[int]) bool { return len(path) == a.n }

func (a pickAdapter) Cost(path Path[int]) float64 { return float64(path.Last()) }

func drain[N comparable](t *testing.T, c *Cursor[N]) []Event[N] {
	t.Helper()
	events := make([]Event[N], 0)
	for {
		ev, ok := c.Next()
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}

func TestCursorChainShortestPath(t *testing.T) {
	cur := New[int](chainAdapter{last: 3}, Options{StopAtGoal: true, GlobalVisited: true})
	events := drain(t, cur)

	if events[0].Type != EventInit {
		t.Fatalf("first event = %s, want init", events[0].Type)
	}
	last := events[len(events)-1]
	if last.Type != EventComplete {
		t.Fatalf("last event = %s, want complete", last.Type)
	}
	if last.Success == nil || !*last.Success {
		t.Errorf("expected success, got %+v", last)
	}

	var solution *Event[int]
	for i := range events {
		if events[i].Type == EventSolution {
			solution = &events[i]
		}
	}
	if solution == nil {
		t.Fatal("no solution event emitted")
	}
	want := Path[int]{0, 1, 2, 3}
	if !reflect.DeepEqual(solution.Path, want) {
		t.Errorf("solution path = %v, want %v", solution.Path, want)
	}
	if solution.Length != 4 {
		t.Errorf("solution length = %d, want 4", solution.Length)
	}
}

func TestCursorNoPathReportsFailure(t *testing.T) {
	cur := New[int](neverGoal{chainAdapter{last: 3}}, Options{StopAtGoal: true, GlobalVisited: true})
	events := drain(t, cur)

	last := events[len(events)-1]
	if last.Type != EventComplete {
		t.Fatalf("last event = %s, want complete", last.Type)
	}
	if last.Success == nil || *last.Success {
		t.Errorf("expected success=false, got %+v", last)
	}
	for _, ev := range events {
		if ev.Type == EventSolution {
			t.Error("unexpected solution event in unsolvable search")
		}
	}
}

type neverGoal struct{ chainAdapter }

func (neverGoal) IsGoal(Path[int]) bool { return false }

func TestCursorStartEqualsGoal(t *testing.T) {
	cur := New[int](chainAdapter{last: 0}, Options{StopAtGoal: true, GlobalVisited: true})
	events := drain(t, cur)

	types := make([]EventType, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	want := []EventType{EventInit, EventProcessing, EventSolution, EventComplete}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("event types = %v, want %v", types, want)
	}
	if len(events[2].Path) != 1 {
		t.Errorf("solution path length = %d, want 1", len(events[2].Path))
	}
}

func TestCursorExplorationCap(t *testing.T) {
	cur := New[int](loopAdapter{}, Options{MaxExpansions: 5})
	events := drain(t, cur)

	processing := 0
	for _, ev := range events {
		if ev.Type == EventProcessing {
			processing++
		}
	}
	if processing != 5 {
		t.Errorf("processing events = %d, want 5 (the cap)", processing)
	}

	last := events[len(events)-1]
	if last.Type != EventComplete {
		t.Fatalf("last event = %s, want complete", last.Type)
	}
	if !last.Exhausted {
		t.Error("expected exhausted=true on truncated search")
	}
	if last.Success == nil || *last.Success {
		t.Error("expected success=false: no complete ordering was explored")
	}
}

func TestCursorBestTracking(t *testing.T) {
	cur := New[int](pickAdapter{n: 3}, Options{})
	events := drain(t, cur)

	// Orderings of 3 nodes starting anywhere: solutions are the 3! = 6
	// permutations minus none (no global visited set prunes them).
	solutions := 0
	bestFlags := 0
	for _, ev := range events {
		if ev.Type == EventSolution {
			solutions++
			if ev.Cost == nil {
				t.Fatalf("solution without cost: %+v", ev)
			}
			if ev.Best {
				bestFlags++
			}
		}
	}
	if solutions != 6 {
		t.Errorf("solutions = %d, want 6", solutions)
	}
	if bestFlags == 0 {
		t.Error("expected at least one best-improving solution")
	}

	last := events[len(events)-1]
	if last.BestCost == nil || *last.BestCost != 1 {
		t.Errorf("terminal bestCost = %v, want 1", last.BestCost)
	}
	if last.Success == nil || !*last.Success {
		t.Error("expected success=true: complete orderings were explored")
	}
	if last.Exhausted {
		t.Error("search was not truncated, exhausted must be false")
	}
	if last.BestPath.Last() != 1 {
		t.Errorf("best path = %v, want one ending in node 1", last.BestPath)
	}
}

func TestCursorDeterminism(t *testing.T) {
	run := func() []Event[int] {
		return drain(t, New[int](pickAdapter{n: 4}, Options{}))
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over the same input produced different event sequences")
	}
}

func TestCursorOrderingInvariants(t *testing.T) {
	events := drain(t, New[int](chainAdapter{last: 4}, Options{StopAtGoal: true, GlobalVisited: true}))

	if events[0].Type != EventInit {
		t.Fatal("trace must open with init")
	}
	terminalAt := -1
	var lastProcessing Path[int]
	for i, ev := range events {
		switch ev.Type {
		case EventInit:
			if i != 0 {
				t.Errorf("init at position %d", i)
			}
		case EventProcessing:
			lastProcessing = ev.Path
		case EventExpand:
			if !reflect.DeepEqual(ev.Parent, lastProcessing) {
				t.Errorf("expand parent %v does not match current processing path %v", ev.Parent, lastProcessing)
			}
			if len(ev.Path) != len(ev.Parent)+1 {
				t.Errorf("child path %v is not a one-node extension of %v", ev.Path, ev.Parent)
			}
			if !reflect.DeepEqual(ev.Path[:len(ev.Parent)], []int(ev.Parent)) {
				t.Errorf("parent %v is not a strict prefix of child %v", ev.Parent, ev.Path)
			}
			if ev.Child == nil || ev.Path.Last() != *ev.Child {
				t.Errorf("child node mismatch in %+v", ev)
			}
		case EventComplete:
			terminalAt = i
		}
	}
	if terminalAt != len(events)-1 {
		t.Errorf("terminal event at %d, want last position %d", terminalAt, len(events)-1)
	}
}

func TestEmptyCursor(t *testing.T) {
	cur := Empty[int]()
	if _, ok := cur.Next(); ok {
		t.Error("empty cursor produced an event")
	}
	// Next must stay exhausted.
	if _, ok := cur.Next(); ok {
		t.Error("empty cursor produced an event on repeated Next")
	}
}

// overflowCostAdapter explores orderings like pickAdapter but charges every
// complete ordering a cost that overflows float64.
type overflowCostAdapter struct {
	pickAdapter
}

func (overflowCostAdapter) Cost(Path[int]) float64 { return math.Inf(1) }

func TestCursorNonFiniteCostsSerializeAsAbsent(t *testing.T) {
	cur := New[int](overflowCostAdapter{pickAdapter{n: 2}}, Options{})
	events := drain(t, cur)

	last := events[len(events)-1]
	if last.Type != EventComplete {
		t.Fatalf("last event = %s, want complete", last.Type)
	}

	sawSolution := false
	for _, ev := range events {
		if ev.Cost != nil || ev.BestCost != nil {
			t.Errorf("event %s carries a non-finite cost value", ev.Type)
		}
		if _, err := json.Marshal(ev); err != nil {
			t.Errorf("event %s does not serialize: %v", ev.Type, err)
		}
		if ev.Type == EventSolution {
			sawSolution = true
		}
	}
	if !sawSolution {
		t.Fatal("no solution event emitted")
	}
	// The overflowed tour is still the best one found.
	if last.BestPath == nil {
		t.Error("terminal event lost the best path")
	}
}

func TestCursorIsOneShot(t *testing.T) {
	cur := New[int](chainAdapter{last: 2}, Options{StopAtGoal: true, GlobalVisited: true})
	first := drain(t, cur)
	if len(first) == 0 {
		t.Fatal("expected events from first drain")
	}
	if _, ok := cur.Next(); ok {
		t.Error("drained cursor produced another event")
	}
}
