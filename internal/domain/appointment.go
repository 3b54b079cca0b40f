package domain

import (
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/pkg/types"
)

// BookedAppointment is one existing booking for a doctor on a date,
// as reported by the upstream API: a (time, token) pair.
type BookedAppointment struct {
	Time  types.TimeString
	Token int
}

// BookingRequest is a booking submission to the upstream API.
// StartTime is the selected slot's start; on the wire its seconds
// component is always forced to ":00".
type BookingRequest struct {
	PatientID      int64
	DepartmentID   int64
	DoctorID       int64
	RegistrationID string
	Date           time.Time
	StartTime      types.TimeString
}

// Appointment is a booking confirmed by the upstream API.
type Appointment struct {
	ID          int64
	TokenNumber int
	DoctorID    int64
	Date        time.Time
	StartTime   types.TimeString
}
