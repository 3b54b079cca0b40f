package session

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists for the given ID.
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
