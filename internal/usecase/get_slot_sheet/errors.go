package get_slot_sheet

import "errors"

var (
	// ErrDoctorNotFound is returned when the doctor is not in the department.
	ErrDoctorNotFound = errors.New("get_slot_sheet: doctor not found")

	// ErrDepartmentNotFound is returned when the department does not exist.
	ErrDepartmentNotFound = errors.New("get_slot_sheet: department not found")

	// ErrUnauthorized is returned when the upstream rejects the session's token.
	ErrUnauthorized = errors.New("get_slot_sheet: unauthorized")

	// ErrDateInPast is returned when the requested date is before today.
	ErrDateInPast = errors.New("get_slot_sheet: date is in the past")

	// ErrSheetNotFull is returned when an extension is requested while free
	// slots remain on the sheet.
	ErrSheetNotFull = errors.New("get_slot_sheet: sheet still has free slots")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_slot_sheet: invalid input data")

	// ErrInternal is returned on upstream or internal failures.
	ErrInternal = errors.New("get_slot_sheet: internal error")
)
