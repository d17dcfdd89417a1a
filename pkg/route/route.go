// Package route adapts exhaustive best-tour search over a fixed point set
// to the search engine. Every ordering of the points is a candidate; a
// tour's cost is the closed loop including the leg from the last point back
// to the first. There is no global visited set: a point may appear in many
// in-flight orderings, it just cannot repeat within one.
package route

import (
	"fmt"
	"math"

	"github.com/dd0wney/searchscope/pkg/engine"
)

// DefaultMaxExpansions bounds the combinatorial blow-up of the exhaustive
// search. When the cap truncates the search, the terminal event reports
// exhausted=true and the best-so-far tour, so consumers know the result
// may not be globally optimal.
const DefaultMaxExpansions = 2000

// Point is one stop, identified by a caller-supplied unique ID and placed
// on a 2-D plane.
type Point struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Planner is a validated route problem instance. Nodes are point indices;
// pairwise distances are precomputed at construction.
type Planner struct {
	points        []Point
	dist          [][]float64
	maxExpansions int
}

// Option configures a Planner.
type Option func(*Planner)

// WithMaxExpansions overrides the exploration cap. Zero disables the cap
// entirely.
func WithMaxExpansions(n int) Option {
	return func(p *Planner) {
		p.maxExpansions = n
	}
}

// New validates the point set and returns a Planner. Duplicate point IDs
// are rejected eagerly, wrapped in engine.ErrInvalidProblem. An empty
// point set is accepted: it is the defined degenerate case whose traversal
// produces zero events.
func New(points []Point, opts ...Option) (*Planner, error) {
	byID := make(map[string]int, len(points))
	for i, pt := range points {
		if prev, dup := byID[pt.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate point id %q (indices %d and %d)",
				engine.ErrInvalidProblem, pt.ID, prev, i)
		}
		byID[pt.ID] = i
	}

	p := &Planner{
		points:        points,
		dist:          distanceMatrix(points),
		maxExpansions: DefaultMaxExpansions,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxExpansions < 0 {
		return nil, fmt.Errorf("%w: negative exploration cap %d", engine.ErrInvalidProblem, p.maxExpansions)
	}
	return p, nil
}

func distanceMatrix(points []Point) [][]float64 {
	n := len(points)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
		}
	}
	return dist
}

// Points returns the planner's point set.
func (p *Planner) Points() []Point { return p.points }

// Start implements engine.Adapter. Tours are closed loops, so rotations
// are equivalent and index 0 can anchor every ordering.
func (p *Planner) Start() int { return 0 }

// Neighbors returns every point index not yet present in the ordering, in
// index order.
func (p *Planner) Neighbors(path engine.Path[int]) []int {
	neighbors := make([]int, 0, len(p.points)-len(path))
	for i := range p.points {
		if !path.Contains(i) {
			neighbors = append(neighbors, i)
		}
	}
	return neighbors
}

// IsGoal reports whether the ordering covers every point.
func (p *Planner) IsGoal(path engine.Path[int]) bool {
	return len(path) == len(p.points)
}

// Cost implements engine.Coster: the closed-tour cost of a complete
// ordering, including the return leg to the first point.
func (p *Planner) Cost(path engine.Path[int]) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += p.dist[path[i-1]][path[i]]
	}
	total += p.dist[path.Last()][path.First()]
	return total
}

// Solve starts an exhaustive traversal and returns its event cursor. The
// zero-point planner returns an exhausted cursor that produces no events.
func (p *Planner) Solve() *engine.Cursor[int] {
	if len(p.points) == 0 {
		return engine.Empty[int]()
	}
	return engine.New[int](p, engine.Options{
		MaxExpansions: p.maxExpansions,
	})
}
