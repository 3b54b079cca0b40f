package domain

import "github.com/m1shk4/HMS-AppointmentGateway/pkg/types"

// Slot is one 5-minute consultation window on a doctor's slot sheet.
// Slots are a pure projection of (consultation time, booked set, date, now)
// and are never persisted.
type Slot struct {
	Token     int
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBooked  bool
	IsExpired bool
}

// IsFree reports whether the slot can still be selected for booking.
func (s *Slot) IsFree() bool {
	return !s.IsBooked && !s.IsExpired
}

// Matches reports whether booked marks this slot as taken.
// The match is deliberately tolerant: either the booked record's time
// equals the slot's start, or its token equals the slot's token. Upstream
// booking records are keyed inconsistently and either key must suffice.
func (s *Slot) Matches(booked BookedAppointment) bool {
	return booked.Time == s.StartTime || booked.Token == s.Token
}
