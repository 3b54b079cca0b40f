package catalog

import (
	"context"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

// HospitalClient is the upstream reads the catalog service depends on.
type HospitalClient interface {
	GetDepartments(ctx context.Context, token string) ([]domain.Department, error)
	GetDoctors(ctx context.Context, token string, departmentID int64) ([]domain.Doctor, error)
}

// Cache is an optional read-through cache for catalog data.
// A cache miss is reported with catalogcache.ErrCacheMiss.
type Cache interface {
	Departments(ctx context.Context) ([]domain.Department, error)
	SetDepartments(ctx context.Context, departments []domain.Department) error
	Doctors(ctx context.Context, departmentID int64) ([]domain.Doctor, error)
	SetDoctors(ctx context.Context, departmentID int64, doctors []domain.Doctor) error
}

// Logger is the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
