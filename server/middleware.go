package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stocktrail/stocktrail/sessions"
	"github.com/stocktrail/stocktrail/users"
)

// sessionCookieName keys the session id on the wire.
const sessionCookieName = "session_id"

type ctxKeySession struct{}

func withSession(ctx context.Context, sess sessions.Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, sess)
}

// SessionFromContext returns the session injected by RequireSession.
func SessionFromContext(ctx context.Context) (sessions.Session, bool) {
	sess, ok := ctx.Value(ctxKeySession{}).(sessions.Session)
	return sess, ok
}

// RequireSession resolves the session cookie against the session store and
// injects the session into the request context. A missing or stale cookie
// ends the request with 403.
func (s *Server) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			respondError(w, http.StatusForbidden, "Unauthorized access")
			return
		}

		sess, err := s.sessions.Get(cookie.Value)
		if err != nil {
			respondError(w, http.StatusForbidden, "Unauthorized access")
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
	})
}

// RequireRole gates a route group to one role, replying with the given
// denial message otherwise. Chain it after RequireSession.
func (s *Server) RequireRole(role users.Role, denial string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok || sess.Role != role {
				respondError(w, http.StatusForbidden, denial)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
