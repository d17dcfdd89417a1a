package api

import (
	"errors"
	"net/http"

	"github.com/dd0wney/searchscope/pkg/engine"
	"github.com/dd0wney/searchscope/pkg/maze"
	"github.com/dd0wney/searchscope/pkg/validation"
)

// handleMaze traces a shortest-path search over a 0/1 grid, streaming
// every step as NDJSON.
func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req validation.MazeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateMazeRequest(&req); err != nil {
		s.metrics.RecordRejected("maze")
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := maze.New(req.Grid,
		maze.Cell{Row: req.Start.Row, Col: req.Start.Col},
		maze.Cell{Row: req.End.Row, Col: req.End.Col},
	)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidProblem) {
			s.metrics.RecordRejected("maze")
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, "Failed to build problem")
		return
	}

	streamTrace(s, w, r, "maze", m.Solve())
}
