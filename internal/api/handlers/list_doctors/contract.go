package list_doctors

import (
	"context"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

type CatalogService interface {
	Doctors(ctx context.Context, token string, departmentID int64) ([]domain.Doctor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
