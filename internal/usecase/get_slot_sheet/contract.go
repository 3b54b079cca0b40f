package get_slot_sheet

import (
	"context"
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

// DoctorSource resolves the doctor whose sheet is being projected.
type DoctorSource interface {
	DoctorByID(ctx context.Context, token string, departmentID, doctorID int64) (*domain.Doctor, error)
}

// HospitalClient fetches the booked (time, token) pairs for a doctor+date.
type HospitalClient interface {
	GetBookedAppointments(ctx context.Context, token string, doctorID int64, date time.Time) ([]domain.BookedAppointment, error)
}

// TimeProvider supplies the current time (swapped out in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
