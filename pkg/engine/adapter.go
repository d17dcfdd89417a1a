package engine

// Adapter supplies the problem-specific logic the generic search loop is
// parameterized by. Implementations must be deterministic: Neighbors must
// return the same candidates in the same order for equal paths, so that
// identical traversals yield identical event sequences.
type Adapter[N comparable] interface {
	// Start returns the node the traversal begins from.
	Start() N

	// Neighbors returns the candidate extensions of path, in a fixed
	// order. Candidates must already satisfy the adapter's own validity
	// rules (bounds, walls, no revisit within the path); the engine only
	// applies the global visited policy on top, when enabled.
	Neighbors(path Path[N]) []N

	// IsGoal reports whether path is a finished solution candidate.
	IsGoal(path Path[N]) bool
}

// Coster is implemented by adapters whose solutions carry a comparable
// cost. When the adapter passed to New implements Coster, the engine
// tracks the best (strictly lowest-cost) solution seen so far and reports
// it on solution, processing and terminal events.
type Coster[N comparable] interface {
	Cost(path Path[N]) float64
}

// Options selects the engine policies that differ between problem shapes.
type Options struct {
	// StopAtGoal terminates the traversal at the first goal path. With a
	// FIFO frontier the first goal found is a shortest solution, so grid
	// search sets this; exhaustive route search leaves it false and keeps
	// draining the frontier.
	StopAtGoal bool

	// GlobalVisited enables a traversal-wide visited set. Nodes are
	// marked the instant they are enqueued and are never re-enqueued.
	// Left off, revisit prevention is the adapter's (path-local) concern.
	GlobalVisited bool

	// MaxExpansions caps the number of dequeue cycles; 0 means unbounded.
	// Reaching the cap with paths still pending is reported on the
	// terminal event as exhausted, not as an error.
	MaxExpansions int
}
