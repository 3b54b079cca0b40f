package billing

import (
	"context"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

// DoctorSource resolves a doctor record for fee and GST data.
type DoctorSource interface {
	DoctorByID(ctx context.Context, token string, departmentID, doctorID int64) (*domain.Doctor, error)
}

// Logger is the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
