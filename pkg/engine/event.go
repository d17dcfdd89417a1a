package engine

// EventType discriminates the closed set of trace events. Consumers must
// treat unknown future types as ignorable but forwardable.
type EventType string

const (
	// EventInit is emitted exactly once, before the search loop starts.
	EventInit EventType = "init"
	// EventProcessing is emitted for each path dequeued from the frontier.
	EventProcessing EventType = "processing"
	// EventExpand is emitted for each valid neighbor discovered, in
	// neighbor-generation order.
	EventExpand EventType = "expand"
	// EventBatchComplete is a pure pacing marker emitted after a dequeue
	// cycle that produced at least one expansion. It carries no state.
	EventBatchComplete EventType = "batchComplete"
	// EventSolution is emitted when a dequeued path satisfies the goal
	// condition.
	EventSolution EventType = "solution"
	// EventComplete is the terminal event, emitted exactly once. No event
	// follows it.
	EventComplete EventType = "complete"
)

// Event is one immutable step of the traversal trace. Fields are populated
// per type (see the constants above); unset fields are omitted on the wire.
// Absent numeric values ("no best cost yet") are nil pointers so they
// serialize as missing rather than as a non-finite literal.
type Event[N comparable] struct {
	Type EventType `json:"type"`

	// init
	Message string `json:"message,omitempty"`

	// processing, expand, solution: the path this event is about.
	// For expand this is the newly constructed child path.
	Path Path[N] `json:"path,omitempty"`

	// processing: the frontier node of Path, and the number of paths
	// still pending in the frontier after the dequeue.
	Node    *N   `json:"node,omitempty"`
	Pending *int `json:"pending,omitempty"`

	// expand: the parent path, the discovered child node, and the child
	// path's depth (edge count from the start node).
	Parent Path[N] `json:"parent,omitempty"`
	Child  *N      `json:"child,omitempty"`
	Depth  int     `json:"depth,omitempty"`

	// solution: path length in nodes, closed-tour cost (cost-tracked
	// searches only) and whether this solution improved the best known.
	Length int  `json:"length,omitempty"`
	Best   bool `json:"best,omitempty"`

	// solution, processing, complete: cost bookkeeping. Cost is the cost
	// of Path; BestCost/BestPath describe the best solution known so far.
	Cost     *float64 `json:"cost,omitempty"`
	BestCost *float64 `json:"bestCost,omitempty"`
	BestPath Path[N]  `json:"bestPath,omitempty"`

	// complete
	Success   *bool `json:"success,omitempty"`
	Exhausted bool  `json:"exhausted,omitempty"`
}

func ptr[T any](v T) *T { return &v }
