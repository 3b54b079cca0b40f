package create_session

import (
	"context"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

type SessionService interface {
	Create(ctx context.Context, userID int64, role, accessToken string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
