// Package validation checks request payloads at the transport boundary,
// before a problem adapter is ever constructed. It catches shape defects
// (missing fields, oversized inputs, non-0/1 cells, duplicate IDs) so the
// adapters only re-assert their own structural invariants.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation limits. The visualizer drives small instances; these caps
	// bound memory and stream length, not algorithmic correctness.
	MaxGridRows    = 200
	MaxGridCols    = 200
	MaxRoutePoints = 50
	MaxPointID     = 64

	// MaxCoordinate bounds point positions so that no closed tour over
	// MaxRoutePoints points can overflow float64 when its legs are summed.
	// Non-finite and absurd-magnitude coordinates are rejected here, before
	// a cost is ever computed.
	MaxCoordinate = 1e9
)

func init() {
	validate = validator.New()
}

// Coordinate is a grid position in a request body.
type Coordinate struct {
	Row int `json:"r"`
	Col int `json:"c"`
}

// MazeRequest represents a request to trace a grid traversal
type MazeRequest struct {
	Grid  [][]int    `json:"grid" validate:"required,min=1"`
	Start Coordinate `json:"start"`
	End   Coordinate `json:"end"`
}

// RoutePoint is one stop in a route request.
type RoutePoint struct {
	ID string  `json:"id" validate:"required"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// RouteRequest represents a request to trace a best-route search. An empty
// point list is valid: it streams zero events by definition.
type RouteRequest struct {
	Points []RoutePoint `json:"points" validate:"dive"`
}

// ValidateMazeRequest validates a maze traversal request
func ValidateMazeRequest(req *MazeRequest) error {
	if req == nil {
		return errors.New("maze request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	rows := len(req.Grid)
	if rows > MaxGridRows {
		return fmt.Errorf("Grid: maximum %d rows allowed, got %d", MaxGridRows, rows)
	}
	cols := len(req.Grid[0])
	if cols == 0 {
		return errors.New("Grid: rows must not be empty")
	}
	if cols > MaxGridCols {
		return fmt.Errorf("Grid: maximum %d columns allowed, got %d", MaxGridCols, cols)
	}
	for r, row := range req.Grid {
		if len(row) != cols {
			return fmt.Errorf("Grid: row %d has %d cells, want %d (grid must be rectangular)", r, len(row), cols)
		}
		for c, cell := range row {
			if cell != 0 && cell != 1 {
				return fmt.Errorf("Grid: cell (%d,%d) holds %d, want 0 (empty) or 1 (wall)", r, c, cell)
			}
		}
	}

	for _, ep := range []struct {
		name  string
		coord Coordinate
	}{{"Start", req.Start}, {"End", req.End}} {
		if ep.coord.Row < 0 || ep.coord.Row >= rows || ep.coord.Col < 0 || ep.coord.Col >= cols {
			return fmt.Errorf("%s: (%d,%d) is outside the %dx%d grid", ep.name, ep.coord.Row, ep.coord.Col, rows, cols)
		}
	}

	return nil
}

// ValidateRouteRequest validates a route search request
func ValidateRouteRequest(req *RouteRequest) error {
	if req == nil {
		return errors.New("route request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if len(req.Points) > MaxRoutePoints {
		return fmt.Errorf("Points: maximum %d points allowed, got %d", MaxRoutePoints, len(req.Points))
	}

	seen := make(map[string]int, len(req.Points))
	for i, pt := range req.Points {
		if len(pt.ID) > MaxPointID {
			return fmt.Errorf("Points: id at index %d exceeds %d characters", i, MaxPointID)
		}
		if prev, dup := seen[pt.ID]; dup {
			return fmt.Errorf("Points: duplicate id %q at indices %d and %d", pt.ID, prev, i)
		}
		seen[pt.ID] = i
		for _, c := range []struct {
			name  string
			value float64
		}{{"x", pt.X}, {"y", pt.Y}} {
			if math.IsNaN(c.value) || math.IsInf(c.value, 0) || math.Abs(c.value) > MaxCoordinate {
				return fmt.Errorf("Points: %s of %q is not a finite coordinate within ±%g", c.name, pt.ID, MaxCoordinate)
			}
		}
	}

	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
