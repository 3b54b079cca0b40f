package create_session

import (
	"errors"
	"net/http"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/service/sessions"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.sessions.Create(r.Context(), req.UserID, req.Role, req.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Validation failed: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /sessions - Failed to create session: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s, user_id=%d", session.ID, session.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(session))
}
