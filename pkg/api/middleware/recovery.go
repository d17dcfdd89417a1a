package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/dd0wney/searchscope/pkg/logging"
)

// Recovery creates middleware that recovers from panics in handlers,
// logs the panic with a stack trace and returns 500 to the client.
// A panic mid-stream cannot rewrite the response; in that case the
// connection is simply dropped after logging.
func Recovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						logging.Any("panic", rec),
						logging.String("method", r.Method),
						logging.String("path", r.URL.Path),
						logging.RequestID(GetRequestID(r)),
						logging.String("stack", string(debug.Stack())),
					)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
