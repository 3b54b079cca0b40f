package book_appointment

import "errors"

var (
	// ErrMissingPatient is returned when no patient is selected.
	// Validation errors block the upstream call entirely.
	ErrMissingPatient = errors.New("book_appointment: patient is required")

	// ErrMissingDepartment is returned when no department is selected.
	ErrMissingDepartment = errors.New("book_appointment: department is required")

	// ErrMissingDoctor is returned when no doctor is selected.
	ErrMissingDoctor = errors.New("book_appointment: doctor is required")

	// ErrMissingDate is returned when no date is selected.
	ErrMissingDate = errors.New("book_appointment: date is required")

	// ErrMissingSlot is returned when no slot is selected.
	ErrMissingSlot = errors.New("book_appointment: slot is required")

	// ErrDoctorNotFound is returned when the doctor is not in the department.
	ErrDoctorNotFound = errors.New("book_appointment: doctor not found")

	// ErrUnauthorized is returned when the upstream rejects the session's token.
	ErrUnauthorized = errors.New("book_appointment: unauthorized")

	// ErrDateInPast is returned when the booking date is before today.
	ErrDateInPast = errors.New("book_appointment: date is in the past")

	// ErrInvalidSlot is returned when the selected time does not land on the
	// doctor's 5-minute slot grid.
	ErrInvalidSlot = errors.New("book_appointment: time is not on the slot grid")

	// ErrSlotTaken is returned when the selected slot is already booked.
	ErrSlotTaken = errors.New("book_appointment: slot is already booked")

	// ErrSlotExpired is returned when the selected slot has already started.
	ErrSlotExpired = errors.New("book_appointment: slot has expired")

	// ErrSheetNotFull is returned when the extension token is requested while
	// the regular sheet still has free slots.
	ErrSheetNotFull = errors.New("book_appointment: sheet still has free slots")

	// ErrInternal is returned on upstream or internal failures.
	ErrInternal = errors.New("book_appointment: internal error")
)
