package sessions

import "errors"

var (
	// ErrInvalidInput is returned when the session payload is incomplete.
	ErrInvalidInput = errors.New("sessions: invalid input data")

	// ErrSessionNotFound is returned when no session exists for the given ID.
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("sessions: internal error")
)
