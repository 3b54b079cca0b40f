package billing

import "errors"

var (
	// ErrInvalidInput is returned when the request identifiers are missing.
	ErrInvalidInput = errors.New("billing: invalid input data")

	// ErrDoctorNotFound is returned when the doctor cannot be resolved.
	ErrDoctorNotFound = errors.New("billing: doctor not found")

	// ErrUnauthorized is returned when the upstream rejects the session's token.
	ErrUnauthorized = errors.New("billing: unauthorized")

	// ErrInternal is returned on upstream failures.
	ErrInternal = errors.New("billing: internal error")
)
