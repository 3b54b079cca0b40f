package hospitalapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the upstream rejects the bearer token.
	ErrUnauthorized = errors.New("hospitalapi client: unauthorized")

	// ErrDepartmentNotFound is returned when the department does not exist upstream.
	ErrDepartmentNotFound = errors.New("hospitalapi client: department not found")

	// ErrInternal is returned on request construction or transport failures.
	ErrInternal = errors.New("hospitalapi client: internal error")

	// ErrInvalidResponse is returned when the upstream answer cannot be decoded
	// or carries an unexpected status code.
	ErrInvalidResponse = errors.New("hospitalapi client: invalid response")

	// ErrBookingRejected is returned when the upstream refuses a booking
	// submission. The upstream message, when present, is preserved verbatim
	// in a RejectionError.
	ErrBookingRejected = errors.New("hospitalapi client: booking rejected")
)

// RejectionError carries the upstream-provided rejection message so handlers
// can surface it verbatim. Message is empty when upstream sent none.
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("booking rejected with status %d", e.StatusCode)
	}
	return fmt.Sprintf("booking rejected with status %d: %s", e.StatusCode, e.Message)
}

// Unwrap makes errors.Is(err, ErrBookingRejected) hold.
func (e *RejectionError) Unwrap() error {
	return ErrBookingRejected
}
