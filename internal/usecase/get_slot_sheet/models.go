package get_slot_sheet

import (
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
)

// Request asks for a doctor's slot sheet on a date.
type Request struct {
	AccessToken  string    // upstream bearer token from the caller's session
	DepartmentID int64     // department the doctor belongs to
	DoctorID     int64     // doctor whose sheet is projected
	Date         time.Time // target date (no time component)
	Extend       bool      // append one extra slot; valid only on a full sheet
}

// Response is the projected slot sheet.
type Response struct {
	DoctorID int64
	Date     time.Time
	Slots    []domain.Slot
	AllTaken bool // every slot on the 50-token sheet is booked or expired
}
