package catalog

import "errors"

var (
	// ErrDepartmentNotFound is returned when the department does not exist upstream.
	ErrDepartmentNotFound = errors.New("catalog: department not found")

	// ErrDoctorNotFound is returned when the doctor is not in the department's list.
	ErrDoctorNotFound = errors.New("catalog: doctor not found")

	// ErrUnauthorized is returned when the upstream rejects the session's token.
	ErrUnauthorized = errors.New("catalog: unauthorized")

	// ErrInternal is returned on upstream or transport failures.
	ErrInternal = errors.New("catalog: internal error")
)
