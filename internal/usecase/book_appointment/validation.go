package book_appointment

import (
	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/types"
)

// validateRequest checks the selection preconditions. Any failure here
// means no upstream call is made.
func validateRequest(req *Request) error {
	if req.PatientID <= 0 {
		return ErrMissingPatient
	}
	if req.DepartmentID <= 0 {
		return ErrMissingDepartment
	}
	if req.DoctorID <= 0 {
		return ErrMissingDoctor
	}
	if req.Date.IsZero() {
		return ErrMissingDate
	}
	if req.StartTime == "" {
		return ErrMissingSlot
	}
	return nil
}

// slotToken maps a start time onto the doctor's slot grid and returns its
// token. The time must be at or after the consultation start, on a 5-minute
// boundary, and within the sheet plus the single extension token.
func slotToken(consultationTime, start types.TimeString) (int, error) {
	offset := start.MinutesSinceMidnight() - consultationTime.MinutesSinceMidnight()

	if offset < 0 || offset%domain.SlotDurationMinutes != 0 {
		return 0, ErrInvalidSlot
	}

	token := offset/domain.SlotDurationMinutes + 1
	if token > domain.SlotsPerSheet+1 {
		return 0, ErrInvalidSlot
	}

	return token, nil
}
