package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"classeur/internal/httputil"
)

// Recovery converts a handler panic into a logged 500 problem response so
// one bad request cannot take the catalog server down.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.Error("panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"error", v,
					"stack", string(debug.Stack()),
				)
				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
