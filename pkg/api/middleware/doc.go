// Package middleware provides the HTTP middleware chain for the trace
// server: request IDs, structured request logging, Prometheus metrics,
// panic recovery, body size limiting and CORS for browser visualizers.
package middleware
