package domain

// Slot sheet geometry. A doctor's day is a fixed sheet of 50 consultation
// slots, 5 minutes each, anchored at the doctor's consultation start time.
const (
	SlotsPerSheet       = 50
	SlotDurationMinutes = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
