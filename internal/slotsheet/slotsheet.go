package slotsheet

import (
	"time"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/types"
)

// Generate projects a doctor's slot sheet for one date: exactly
// domain.SlotsPerSheet slots, domain.SlotDurationMinutes each, token i
// starting at consultationTime + (i-1)*SlotDurationMinutes.
//
// A slot is booked when any booked record matches it by start time OR by
// token. The double match is deliberate tolerance: upstream booking records
// are keyed inconsistently, some by time and some by token, and either key
// must mark the slot taken.
//
// A slot is expired only when date is today and the slot starts before now.
// Future dates never expire.
//
// The projection is pure: same inputs, same sheet.
func Generate(
	consultationTime types.TimeString,
	booked []domain.BookedAppointment,
	date time.Time,
	now time.Time,
) []domain.Slot {
	today := IsSameDay(date, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	slots := make([]domain.Slot, domain.SlotsPerSheet)
	for i := range slots {
		token := i + 1
		start := consultationTime.AddMinutes(i * domain.SlotDurationMinutes)

		slot := domain.Slot{
			Token:     token,
			StartTime: start,
			EndTime:   start.AddMinutes(domain.SlotDurationMinutes),
		}

		slot.IsBooked = IsBooked(&slot, booked)
		if today && start.MinutesSinceMidnight() < nowMinutes {
			slot.IsExpired = true
		}

		slots[i] = slot
	}

	return slots
}

// IsBooked reports whether any booked record matches the slot.
func IsBooked(slot *domain.Slot, booked []domain.BookedAppointment) bool {
	for _, b := range booked {
		if slot.Matches(b) {
			return true
		}
	}
	return false
}

// AllTaken reports whether no slot on the sheet is selectable.
func AllTaken(slots []domain.Slot) bool {
	for i := range slots {
		if slots[i].IsFree() {
			return false
		}
	}
	return true
}

// Extend appends one extra slot directly after the last slot's end,
// token = len+1. The extension is an affordance for a full sheet; it exists
// only in the projection until actually booked.
func Extend(slots []domain.Slot) []domain.Slot {
	last := slots[len(slots)-1]
	start := last.EndTime

	return append(slots, domain.Slot{
		Token:     last.Token + 1,
		StartTime: start,
		EndTime:   start.AddMinutes(domain.SlotDurationMinutes),
	})
}

// IsSameDay reports whether two instants fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast reports whether date is on a day before now's day.
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
