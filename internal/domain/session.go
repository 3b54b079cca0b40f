package domain

import "time"

// Session is an authenticated dashboard session. It carries the
// upstream-issued bearer token so clients never store it themselves.
// Sessions are created at login and deleted at logout.
type Session struct {
	ID          string
	UserID      int64
	Role        string
	AccessToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
