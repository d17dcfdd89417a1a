package engine

import (
	"container/list"
	"math"
)

// Cursor is a lazy, one-shot event sequence over a single traversal.
// Events are produced on demand, one dequeue cycle at a time, so a caller
// can stop driving the cursor at any point (cooperative cancellation) and
// the remaining search is simply never performed.
//
// A Cursor is not safe for concurrent use and cannot be restarted;
// construct a new one per traversal.
type Cursor[N comparable] struct {
	adapter Adapter[N]
	coster  Coster[N]
	opts    Options

	frontier *list.List // FIFO of Path[N], non-decreasing length order
	visited  map[N]bool // only when opts.GlobalVisited
	buf      []Event[N]
	done     bool

	popped    int
	completed int
	solved    bool

	hasBest  bool
	bestCost float64
	bestPath Path[N]
}

// New creates a cursor for one traversal of the given adapter. The first
// event produced is always init; the last is always complete. If the
// adapter also implements Coster, best-solution tracking is enabled.
func New[N comparable](adapter Adapter[N], opts Options) *Cursor[N] {
	c := &Cursor[N]{
		adapter:  adapter,
		opts:     opts,
		frontier: list.New(),
	}
	if coster, ok := adapter.(Coster[N]); ok {
		c.coster = coster
	}

	start := adapter.Start()
	root := Path[N]{start}
	c.frontier.PushBack(root)
	if opts.GlobalVisited {
		c.visited = map[N]bool{start: true}
	}
	c.emit(Event[N]{Type: EventInit, Path: root, Message: "search started"})
	return c
}

// Empty returns an already-exhausted cursor that produces no events.
// Degenerate problems (an empty point set) use it so that "zero events"
// stays a defined outcome rather than an error.
func Empty[N comparable]() *Cursor[N] {
	return &Cursor[N]{done: true}
}

// Next returns the next event in strict emission order. The second result
// is false once the sequence is exhausted; no event follows the terminal
// complete event.
func (c *Cursor[N]) Next() (Event[N], bool) {
	for len(c.buf) == 0 {
		if c.done {
			return Event[N]{}, false
		}
		c.step()
	}
	ev := c.buf[0]
	c.buf = c.buf[1:]
	return ev, true
}

func (c *Cursor[N]) emit(ev Event[N]) {
	c.buf = append(c.buf, ev)
}

// step runs one dequeue cycle: pop, goal-check, expand. All events of the
// cycle are buffered in order, so the protocol's per-path ordering
// (processing, then expands, then batchComplete) holds by construction.
func (c *Cursor[N]) step() {
	if c.frontier.Len() == 0 {
		c.finish(false)
		return
	}
	if c.opts.MaxExpansions > 0 && c.popped >= c.opts.MaxExpansions {
		// Cap reached with paths still pending: truncated search.
		c.finish(true)
		return
	}

	path := c.frontier.Remove(c.frontier.Front()).(Path[N])
	c.popped++

	proc := Event[N]{
		Type:    EventProcessing,
		Path:    path,
		Node:    ptr(path.Last()),
		Pending: ptr(c.frontier.Len()),
	}
	if c.coster != nil && c.hasBest {
		proc.BestCost = finite(c.bestCost)
	}
	c.emit(proc)

	if c.adapter.IsGoal(path) {
		c.goal(path)
		return
	}

	expanded := 0
	for _, n := range c.adapter.Neighbors(path) {
		if c.opts.GlobalVisited {
			if c.visited[n] {
				continue
			}
			c.visited[n] = true
		}
		child := path.Extend(n)
		c.frontier.PushBack(child)
		c.emit(Event[N]{
			Type:   EventExpand,
			Parent: path,
			Path:   child,
			Child:  ptr(n),
			Depth:  len(child) - 1,
		})
		expanded++
	}
	if expanded > 0 {
		c.emit(Event[N]{Type: EventBatchComplete})
	}
}

func (c *Cursor[N]) goal(path Path[N]) {
	sol := Event[N]{Type: EventSolution, Path: path, Length: len(path)}
	if c.coster != nil {
		cost := c.coster.Cost(path)
		improved := !c.hasBest || cost < c.bestCost
		if improved {
			c.hasBest = true
			c.bestCost = cost
			c.bestPath = path
		}
		sol.Cost = finite(cost)
		sol.Best = improved
	} else {
		sol.Best = true
	}
	c.completed++
	c.emit(sol)

	if c.opts.StopAtGoal {
		c.solved = true
		c.finish(false)
	}
}

func (c *Cursor[N]) finish(exhausted bool) {
	ev := Event[N]{Type: EventComplete, Exhausted: exhausted}
	if c.opts.StopAtGoal {
		ev.Success = ptr(c.solved)
	} else {
		ev.Success = ptr(c.completed > 0)
	}
	if c.hasBest {
		ev.BestPath = c.bestPath
		ev.BestCost = finite(c.bestCost)
	}
	c.emit(ev)
	c.done = true

	// Traversal state is dead after the terminal event; release it so a
	// retained cursor doesn't pin the frontier.
	c.frontier = nil
	c.visited = nil
}

// finite returns a pointer to v, or nil when v has no JSON representation
// (NaN or an infinity from an overflowed cost). On the wire an absent
// value is the only legal form for a non-finite number; comparisons still
// see the raw value.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return ptr(v)
}
