package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is the unit the slot engine does all of its arithmetic in:
// minutes since midnight, with a 24h wrap.
type TimeString string

// ErrInvalidTimeString is returned when a string cannot be parsed as "HH:MM"
// or "HH:MM:SS".
var ErrInvalidTimeString = errors.New("invalid time string format")

const minutesPerDay = 24 * 60

// NewTimeString builds a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS".
// A seconds component is accepted and discarded: upstream records carry
// "HH:MM:SS" while the slot grid works on whole minutes.
func NewTimeStringFromString(s string) (TimeString, error) {
	var h, m, sec int

	switch len(s) {
	case 5:
		if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%2d:%2d:%2d", &h, &m, &sec); err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// String returns the "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// WithSeconds returns the "HH:MM:00" form used on the upstream wire.
// The seconds component is always forced to zero.
func (t TimeString) WithSeconds() string {
	return string(t) + ":00"
}

// MinutesSinceMidnight converts the time to whole minutes since 00:00.
// The zero TimeString and malformed values map to 0.
func (t TimeString) MinutesSinceMidnight() int {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%2d:%2d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// AddMinutes returns the time shifted forward by m minutes, wrapping at
// midnight so the result is always a valid time of day.
func (t TimeString) AddMinutes(m int) TimeString {
	total := (t.MinutesSinceMidnight() + m) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesSinceMidnight() < other.MinutesSinceMidnight()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesSinceMidnight() > other.MinutesSinceMidnight()
}
