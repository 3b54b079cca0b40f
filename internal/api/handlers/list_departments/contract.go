package list_departments

import (
	"context"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

type CatalogService interface {
	Departments(ctx context.Context, token string) ([]domain.Department, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
