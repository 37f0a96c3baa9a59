package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dynamicweb/dynamicweb/internal/api/response"
)

// Recovery is middleware that recovers from panics. API clients get a JSON
// envelope with a 500; browsers get a plain error page.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(r.Context())
				slog.Error("panic recovered", "error", err, "requestId", requestID, "path", r.URL.Path)
				if wantsHTML(r) {
					http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
					return
				}
				response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", requestID)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func wantsHTML(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
