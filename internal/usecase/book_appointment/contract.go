package book_appointment

import (
	"context"
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

// DoctorSource resolves the doctor whose slot is being booked.
type DoctorSource interface {
	DoctorByID(ctx context.Context, token string, departmentID, doctorID int64) (*domain.Doctor, error)
}

// HospitalClient is the upstream surface the use case depends on.
type HospitalClient interface {
	GetBookedAppointments(ctx context.Context, token string, doctorID int64, date time.Time) ([]domain.BookedAppointment, error)
	BookAppointment(ctx context.Context, token string, req domain.BookingRequest) (*domain.Appointment, error)
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
