package delete_session

import (
	"errors"
	"net/http"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/middleware"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/sessions"
)

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "session required")
		return
	}

	if err := h.sessions.Delete(r.Context(), session.ID); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			// Session vanished between Auth and here, logout is still done.
			h.logger.Warn("DELETE /sessions - Session already gone: session_id=%s", session.ID)
			handlers.RespondNoContent(w)
		default:
			h.logger.Error("DELETE /sessions - Failed to delete session: session_id=%s, error=%v", session.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions - Session deleted: session_id=%s, user_id=%d", session.ID, session.UserID)
	handlers.RespondNoContent(w)
}
