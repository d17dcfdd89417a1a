package maze

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/searchscope/pkg/engine"
)

// randomInstance builds a small random grid instance from a seed, so every
// generated case is reproducible from the gopter shrink output.
func randomInstance(seed int64) ([][]int, Cell, Cell) {
	rng := rand.New(rand.NewSource(seed))
	rows := 1 + rng.Intn(5)
	cols := 1 + rng.Intn(5)

	grid := make([][]int, rows)
	open := make([]Cell, 0, rows*cols)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			if rng.Float64() < 0.3 {
				grid[r][c] = Wall
			} else {
				open = append(open, Cell{r, c})
			}
		}
	}
	if len(open) == 0 {
		grid[0][0] = 0
		open = append(open, Cell{0, 0})
	}
	start := open[rng.Intn(len(open))]
	end := open[rng.Intn(len(open))]
	return grid, start, end
}

// referenceDistance is an independent check: plain BFS over cells (no
// paths, no events) returning the shortest path length in cells, or -1
// when end is unreachable.
func referenceDistance(grid [][]int, start, end Cell) int {
	rows, cols := len(grid), len(grid[0])
	dist := map[Cell]int{start: 1}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return dist[cur]
		}
		for _, d := range directions {
			next := Cell{cur.Row + d.Row, cur.Col + d.Col}
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if grid[next.Row][next.Col] != 0 {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

func TestSolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("solution length equals true shortest distance", prop.ForAll(
		func(seed int64) bool {
			grid, start, end := randomInstance(seed)
			m, err := New(grid, start, end)
			if err != nil {
				return true // generator only yields open endpoints; skip if not
			}

			var solutionLen int
			var success bool
			for cur := m.Solve(); ; {
				ev, ok := cur.Next()
				if !ok {
					break
				}
				switch ev.Type {
				case engine.EventSolution:
					solutionLen = ev.Length
				case engine.EventComplete:
					success = ev.Success != nil && *ev.Success
				}
			}

			want := referenceDistance(grid, start, end)
			if want == -1 {
				return !success && solutionLen == 0
			}
			return success && solutionLen == want
		},
		gen.Int64(),
	))

	properties.Property("visited set never exceeds the grid", prop.ForAll(
		func(seed int64) bool {
			grid, start, end := randomInstance(seed)
			m, err := New(grid, start, end)
			if err != nil {
				return true
			}

			seen := make(map[Cell]bool)
			for cur := m.Solve(); ; {
				ev, ok := cur.Next()
				if !ok {
					break
				}
				if ev.Type == engine.EventProcessing {
					if seen[*ev.Node] {
						return false // dequeued twice
					}
					seen[*ev.Node] = true
				}
			}
			return len(seen) <= len(grid)*len(grid[0])
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
