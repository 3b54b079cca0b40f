package create_session

import (
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	UserID      int64  `json:"userId"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// SessionResponse HTTP response model. The upstream access token stays
// server-side and is never echoed back.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// FromDomain converts the session into the HTTP response
func FromDomain(session *domain.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: session.ID,
		UserID:    session.UserID,
		Role:      session.Role,
		CreatedAt: session.CreatedAt.Format(time.RFC3339),
	}
}
