package sessions

import (
	"context"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

// SessionRepository is the persistence the service depends on.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Logger is the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
