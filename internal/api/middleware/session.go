package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dynamicweb/dynamicweb/internal/session"
)

// SessionCookie is the name of the cookie carrying the session ID.
const SessionCookie = "dw_session"

const sessionKey contextKey = "session"

// Session returns middleware that loads the visitor's session from the
// dw_session cookie, creating one when the cookie is missing, malformed or
// refers to an expired session.
func Session(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id uuid.UUID
			if c, err := r.Cookie(SessionCookie); err == nil {
				id, _ = uuid.Parse(c.Value)
			}

			sess, created := store.GetOrCreate(id)
			if created {
				slog.Debug("session created", "session", sess.Ref(), "requestId", GetRequestID(r.Context()))
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sess.ID().String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Secure:   r.TLS != nil,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession retrieves the session from the context, or nil if none is set.
func GetSession(ctx context.Context) *session.Session {
	if s, ok := ctx.Value(sessionKey).(*session.Session); ok {
		return s
	}
	return nil
}
