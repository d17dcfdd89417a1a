package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string // List of allowed origins, or ["*"] for all
	AllowedMethods []string // HTTP methods allowed
	AllowedHeaders []string // Headers allowed in requests
	MaxAge         int      // Preflight cache duration in seconds
}

// DefaultCORSConfig returns the configuration the browser visualizer
// expects: any origin may POST a problem and read its event stream.
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400, // 24 hours
	}
}

// CORS creates middleware that handles Cross-Origin Resource Sharing.
func CORS(config *CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := false
			if config != nil && len(config.AllowedOrigins) > 0 {
				for _, o := range config.AllowedOrigins {
					if o == "*" || o == origin {
						allowed = true
						break
					}
				}
			}

			if allowed && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // Important for caching

				methods := "GET, POST, OPTIONS"
				headers := "Content-Type, X-Request-ID"
				if len(config.AllowedMethods) > 0 {
					methods = strings.Join(config.AllowedMethods, ", ")
				}
				if len(config.AllowedHeaders) > 0 {
					headers = strings.Join(config.AllowedHeaders, ", ")
				}
				if config.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				if allowed {
					w.WriteHeader(http.StatusOK)
				} else {
					w.WriteHeader(http.StatusForbidden)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
