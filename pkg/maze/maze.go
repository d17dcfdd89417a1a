// Package maze adapts rectangular 0/1 grids to the search engine. Breadth
// first order plus the engine's global visited set makes the first solution
// event a shortest path.
package maze

import (
	"fmt"

	"github.com/dd0wney/searchscope/pkg/engine"
)

// Wall is the canonical wall value. Only 0 is open: any non-zero cell
// blocks traversal, so grids from looser encoders behave the same.
const Wall = 1

// Maze is a validated grid problem instance. Construction via New performs
// all structural checks, so a Maze handed to the engine is always well
// formed.
type Maze struct {
	grid  [][]int
	rows  int
	cols  int
	start Cell
	end   Cell
}

// New validates the grid and endpoints and returns a Maze. All input
// defects (empty or ragged grid, out-of-bounds or wall-covered endpoints)
// are reported eagerly, wrapped in engine.ErrInvalidProblem, before any
// traversal event can be produced.
func New(grid [][]int, start, end Cell) (*Maze, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", engine.ErrInvalidProblem)
	}
	rows, cols := len(grid), len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: grid is not rectangular (row %d has %d cells, want %d)",
				engine.ErrInvalidProblem, r, len(row), cols)
		}
	}
	for _, ep := range []struct {
		name string
		cell Cell
	}{{"start", start}, {"end", end}} {
		if ep.cell.Row < 0 || ep.cell.Row >= rows || ep.cell.Col < 0 || ep.cell.Col >= cols {
			return nil, fmt.Errorf("%w: %s %v is outside the %dx%d grid",
				engine.ErrInvalidProblem, ep.name, ep.cell, rows, cols)
		}
		if grid[ep.cell.Row][ep.cell.Col] != 0 {
			return nil, fmt.Errorf("%w: %s %v is a wall cell", engine.ErrInvalidProblem, ep.name, ep.cell)
		}
	}

	return &Maze{grid: grid, rows: rows, cols: cols, start: start, end: end}, nil
}

// Start implements engine.Adapter.
func (m *Maze) Start() Cell { return m.start }

// directions is the fixed neighbor-generation order: up, right, down, left.
var directions = [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Neighbors returns the in-bounds, non-wall orthogonal moves from the
// path's frontier cell. Visited filtering is the engine's job (the maze
// traversal runs with a global visited set).
func (m *Maze) Neighbors(path engine.Path[Cell]) []Cell {
	cell := path.Last()
	neighbors := make([]Cell, 0, 4)
	for _, d := range directions {
		next := Cell{Row: cell.Row + d.Row, Col: cell.Col + d.Col}
		if next.Row < 0 || next.Row >= m.rows || next.Col < 0 || next.Col >= m.cols {
			continue
		}
		if m.grid[next.Row][next.Col] != 0 {
			continue
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

// IsGoal implements engine.Adapter.
func (m *Maze) IsGoal(path engine.Path[Cell]) bool {
	return path.Last() == m.end
}

// Solve starts a traversal and returns its event cursor. Each call owns a
// fresh frontier and visited set.
func (m *Maze) Solve() *engine.Cursor[Cell] {
	return engine.New[Cell](m, engine.Options{
		StopAtGoal:    true,
		GlobalVisited: true,
	})
}
