package slotsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/HMS-AppointmentGateway/internal/domain"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/types"
)

var (
	day      = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	otherDay = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
)

func at(d time.Time, hour, minute int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}

func TestGenerateGeometry(t *testing.T) {
	slots := Generate("09:00", nil, day, at(otherDay, 8, 0))

	require.Len(t, slots, domain.SlotsPerSheet)

	for i, slot := range slots {
		token := i + 1
		wantStart := types.TimeString("09:00").AddMinutes(i * domain.SlotDurationMinutes)

		assert.Equal(t, token, slot.Token)
		assert.Equal(t, wantStart, slot.StartTime)
		assert.Equal(t, wantStart.AddMinutes(domain.SlotDurationMinutes), slot.EndTime)
	}

	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("13:05"), slots[49].StartTime)
	assert.Equal(t, types.TimeString("13:10"), slots[49].EndTime)
}

func TestGenerateIsIdempotent(t *testing.T) {
	booked := []domain.BookedAppointment{{Time: "09:15", Token: 4}}
	now := at(day, 9, 12)

	first := Generate("09:00", booked, day, now)
	second := Generate("09:00", booked, day, now)

	assert.Equal(t, first, second)
}

func TestBookedByTimeOrToken(t *testing.T) {
	tests := []struct {
		name       string
		booked     []domain.BookedAppointment
		wantBooked []int
	}{
		{
			name:       "matching time and token mark one slot",
			booked:     []domain.BookedAppointment{{Time: "09:15", Token: 4}},
			wantBooked: []int{4},
		},
		{
			name:       "time alone marks the slot",
			booked:     []domain.BookedAppointment{{Time: "09:30", Token: 0}},
			wantBooked: []int{7},
		},
		{
			name:       "token alone marks the slot",
			booked:     []domain.BookedAppointment{{Time: "", Token: 12}},
			wantBooked: []int{12},
		},
		{
			name:       "inconsistent record marks both candidates",
			booked:     []domain.BookedAppointment{{Time: "09:15", Token: 9}},
			wantBooked: []int{4, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := Generate("09:00", tt.booked, day, at(otherDay, 8, 0))

			var got []int
			for _, slot := range slots {
				if slot.IsBooked {
					got = append(got, slot.Token)
				}
			}
			assert.Equal(t, tt.wantBooked, got)
		})
	}
}

func TestBookedRegardlessOfExpiry(t *testing.T) {
	booked := []domain.BookedAppointment{{Time: "09:15", Token: 4}}

	// Same date, late in the day: token 4 is both expired and booked.
	slots := Generate("09:00", booked, day, at(day, 18, 0))
	assert.True(t, slots[3].IsBooked)
	assert.True(t, slots[3].IsExpired)
}

func TestExpiryOnlyAppliesToday(t *testing.T) {
	// Target date is tomorrow relative to now: nothing expires.
	slots := Generate("09:00", nil, otherDay, at(day, 23, 59))
	for _, slot := range slots {
		assert.False(t, slot.IsExpired, "token %d", slot.Token)
	}
}

func TestExpiryAtCurrentTime(t *testing.T) {
	// Consultation at 09:00, now 09:12: slots 1-3 (09:00, 09:05, 09:10)
	// are expired, slot 4 (09:15) is available.
	slots := Generate("09:00", nil, day, at(day, 9, 12))

	assert.True(t, slots[0].IsExpired)
	assert.True(t, slots[1].IsExpired)
	assert.True(t, slots[2].IsExpired)
	assert.False(t, slots[3].IsExpired)
	assert.True(t, slots[3].IsFree())
}

func TestSlotStartingExactlyNowIsNotExpired(t *testing.T) {
	slots := Generate("09:00", nil, day, at(day, 9, 5))
	assert.True(t, slots[0].IsExpired)  // 09:00 < 09:05
	assert.False(t, slots[1].IsExpired) // 09:05 == 09:05
}

func TestAllTaken(t *testing.T) {
	free := Generate("09:00", nil, day, at(otherDay, 8, 0))
	assert.False(t, AllTaken(free))

	booked := make([]domain.BookedAppointment, domain.SlotsPerSheet)
	for i := range booked {
		booked[i] = domain.BookedAppointment{Token: i + 1}
	}
	taken := Generate("09:00", booked, day, at(otherDay, 8, 0))
	assert.True(t, AllTaken(taken))

	// Expiry alone also exhausts the sheet: now is past the last slot.
	expired := Generate("09:00", nil, day, at(day, 23, 0))
	assert.True(t, AllTaken(expired))
}

func TestExtend(t *testing.T) {
	slots := Generate("09:00", nil, day, at(otherDay, 8, 0))
	extended := Extend(slots)

	require.Len(t, extended, domain.SlotsPerSheet+1)

	extra := extended[domain.SlotsPerSheet]
	assert.Equal(t, 51, extra.Token)
	assert.Equal(t, slots[49].EndTime, extra.StartTime)
	assert.Equal(t, types.TimeString("13:10"), extra.StartTime)
	assert.Equal(t, types.TimeString("13:15"), extra.EndTime)
	assert.True(t, extra.IsFree())
}

func TestIsDateInPast(t *testing.T) {
	assert.True(t, IsDateInPast(day, at(otherDay, 0, 1)))
	assert.False(t, IsDateInPast(day, at(day, 23, 59)))
	assert.False(t, IsDateInPast(otherDay, at(day, 23, 59)))
}
