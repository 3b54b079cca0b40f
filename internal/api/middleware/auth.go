package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/sessions"
)

// HeaderSessionID carries the caller's session identifier.
const HeaderSessionID = "X-Session-ID"

type sessionKey struct{}

// SessionSource resolves a session by its identifier.
type SessionSource interface {
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Logger is the logging interface the middleware depends on.
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth resolves the X-Session-ID header into a session and injects it into
// the request context. Requests without a valid session get a 401.
func Auth(source SessionSource, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(HeaderSessionID)
			if sessionID == "" {
				handlers.RespondUnauthorized(w, "missing "+HeaderSessionID+" header")
				return
			}

			session, err := source.Get(r.Context(), sessionID)
			if err != nil {
				switch {
				case errors.Is(err, sessions.ErrSessionNotFound):
					logger.Warn("%s %s - Unknown session", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, "session not found")
				default:
					logger.Error("%s %s - Failed to resolve session: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session injected by Auth.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return session, ok
}
