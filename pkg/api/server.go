// Package api exposes the search engine over HTTP. Traversal endpoints
// stream newline-delimited JSON events so a visualizer can animate the
// search as it runs; everything else is plain request/response JSON.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/searchscope/pkg/api/middleware"
	"github.com/dd0wney/searchscope/pkg/config"
	"github.com/dd0wney/searchscope/pkg/health"
	"github.com/dd0wney/searchscope/pkg/logging"
	"github.com/dd0wney/searchscope/pkg/metrics"
	"github.com/dd0wney/searchscope/pkg/stream"
)

// Version is stamped into health responses.
const Version = "1.0.0"

// Server represents the HTTP API server
type Server struct {
	cfg       *config.Config
	logger    logging.Logger
	metrics   *metrics.Registry
	health    *health.HealthChecker
	delays    stream.DelayPolicy
	startTime time.Time
}

// NewServer creates a new API server. A nil config gets defaults; a nil
// logger discards output.
func NewServer(cfg *config.Config, logger logging.Logger, registry *metrics.Registry) *Server {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.Logging.Level != "" {
		logger.SetLevel(logging.ParseLevel(cfg.Logging.Level))
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger.With(logging.Component("api")),
		metrics:   registry,
		health:    health.NewHealthChecker(),
		delays:    cfg.DelayPolicy(),
		startTime: time.Now(),
	}

	s.health.Register(health.KindHealth, "memory", health.MemoryCheck())
	s.health.Register(health.KindLiveness, "alive", health.AliveCheck())
	s.health.Register(health.KindReadiness, "streams", health.StreamLoadCheck(s.activeStreams))

	return s
}

// Handler returns the fully wired HTTP handler: routes plus the
// middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Traversal endpoints
	mux.HandleFunc("/api/maze", s.handleMaze)
	mux.HandleFunc("/api/route", s.handleRoute)

	// Operational endpoints
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/health/live", s.health.LivenessHandler())
	mux.Handle("/health/ready", s.health.ReadinessHandler())
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.metrics.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	// Outermost first: recovery must wrap everything, request IDs must
	// exist before logging runs, and the body cap sits closest to the
	// handlers.
	var handler http.Handler = mux
	handler = middleware.BodyLimit(int64(s.cfg.Server.BodyLimitKB) * 1024)(handler)
	handler = middleware.CORS(s.corsConfig())(handler)
	handler = middleware.Metrics(s.metrics)(handler)
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

func (s *Server) corsConfig() *middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig()
	if len(s.cfg.CORS.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = s.cfg.CORS.AllowedOrigins
	}
	return cfg
}

// activeStreams reports the current stream gauge for readiness checks.
func (s *Server) activeStreams() float64 {
	return s.metrics.ActiveStreamCount()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    string(s.health.Run(health.KindHealth).Status),
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    time.Since(s.startTime).String(),
	}
	s.respondJSON(w, http.StatusOK, response)
}

// Helper methods

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	s.respondJSON(w, status, response)
}
