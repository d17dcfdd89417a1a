package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dd0wney/searchscope/pkg/api/middleware"
	"github.com/dd0wney/searchscope/pkg/engine"
	"github.com/dd0wney/searchscope/pkg/logging"
	"github.com/dd0wney/searchscope/pkg/metrics"
	"github.com/dd0wney/searchscope/pkg/stream"
)

// decodeJSON decodes a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// streamTrace delivers a full traversal trace as newline-delimited JSON,
// one event per line, flushed as it goes. Validation must be complete
// before calling: once the first line is written the status is committed
// and errors can only end the stream early.
//
// A generic function rather than a method because methods cannot take
// type parameters.
func streamTrace[N comparable](s *Server, w http.ResponseWriter, r *http.Request, problem string, cur *engine.Cursor[N]) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.respondError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	done := s.metrics.StreamStarted()
	defer done()

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	var (
		enc      = json.NewEncoder(w)
		start    = time.Now()
		count    int
		terminal *engine.Event[N]
	)

	err := stream.Pump(r.Context(), cur, s.delays, func(ev engine.Event[N]) error {
		if err := enc.Encode(ev); err != nil {
			return err
		}
		flusher.Flush()

		count++
		s.metrics.RecordEvent(problem, string(ev.Type))
		if ev.Type == engine.EventComplete {
			terminal = &ev
		}
		return nil
	})

	outcome := traceOutcome(err, terminal)
	s.metrics.RecordTraversal(problem, outcome, time.Since(start))

	logger := s.logger.With(
		logging.Problem(problem),
		logging.RequestID(middleware.GetRequestID(r)),
		logging.Events(count),
		logging.String("outcome", outcome),
		logging.Latency(time.Since(start)),
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("trace delivery interrupted", logging.Error(err))
		return
	}
	logger.Info("trace delivered")
}

// traceOutcome maps how a stream ended to a metrics label.
func traceOutcome[N comparable](err error, terminal *engine.Event[N]) string {
	switch {
	case err != nil:
		return metrics.OutcomeCancelled
	case terminal == nil:
		// Degenerate problems stream zero events.
		return metrics.OutcomeEmpty
	case terminal.Exhausted:
		return metrics.OutcomeExhausted
	case terminal.Success != nil && *terminal.Success:
		return metrics.OutcomeSolved
	default:
		return metrics.OutcomeNoPath
	}
}
