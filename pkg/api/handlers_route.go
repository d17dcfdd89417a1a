package api

import (
	"errors"
	"net/http"

	"github.com/dd0wney/searchscope/pkg/engine"
	"github.com/dd0wney/searchscope/pkg/route"
	"github.com/dd0wney/searchscope/pkg/validation"
)

// handleRoute traces a brute-force best-tour search over a point set,
// streaming every permutation step as NDJSON. Event nodes are indices
// into the request's point list, in request order.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req validation.RouteRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateRouteRequest(&req); err != nil {
		s.metrics.RecordRejected("route")
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	points := make([]route.Point, len(req.Points))
	for i, pt := range req.Points {
		points[i] = route.Point{ID: pt.ID, X: pt.X, Y: pt.Y}
	}

	planner, err := route.New(points, route.WithMaxExpansions(s.cfg.Route.MaxExpansions))
	if err != nil {
		if errors.Is(err, engine.ErrInvalidProblem) {
			s.metrics.RecordRejected("route")
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, "Failed to build problem")
		return
	}

	streamTrace(s, w, r, "route", planner.Solve())
}
