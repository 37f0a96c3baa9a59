package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/api/response"
	"github.com/dynamicweb/dynamicweb/internal/session"
)

// renderHTML writes component as an HTML response.
func renderHTML(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		slog.Error("failed to render page", "error", err, "requestId", middleware.GetRequestID(r.Context()))
	}
}

// requireSession returns the request's session, writing a 500 when the
// session middleware did not run.
func requireSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		requestID := middleware.GetRequestID(r.Context())
		slog.Error("no session in request context", "path", r.URL.Path, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", requestID)
		return nil, false
	}
	return sess, true
}
