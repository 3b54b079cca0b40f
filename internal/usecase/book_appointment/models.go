package book_appointment

import (
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/types"
)

// Request is a booking submission for a selected slot.
type Request struct {
	AccessToken    string           // upstream bearer token from the caller's session
	PatientID      int64            // selected patient
	DepartmentID   int64            // selected department
	DoctorID       int64            // selected doctor
	RegistrationID string           // hospital registration number, passed through upstream
	Date           time.Time        // selected date (no time component)
	StartTime      types.TimeString // selected slot's start time
}

// Response is the confirmed booking plus the regenerated sheet.
// Slots reflects the new booking immediately: the confirmed (time, token)
// pair is folded into the projection without a second upstream fetch.
type Response struct {
	AppointmentID int64
	TokenNumber   int
	DoctorID      int64
	Date          time.Time
	StartTime     types.TimeString
	Slots         []domain.Slot
	AllTaken      bool
}
