package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "09:05", want: "09:05"},
		{name: "seconds are truncated", input: "09:05:30", want: "09:05"},
		{name: "midnight", input: "00:00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 3, 14, 9, 7, 42, 0, time.UTC)
	assert.Equal(t, TimeString("09:07"), NewTimeString(moment))
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start TimeString
		add   int
		want  TimeString
	}{
		{name: "within the hour", start: "09:00", add: 5, want: "09:05"},
		{name: "hour rollover", start: "09:55", add: 10, want: "10:05"},
		{name: "midnight wrap", start: "23:50", add: 20, want: "00:10"},
		{name: "zero", start: "12:00", add: 0, want: "12:00"},
		{name: "full slot sheet span", start: "09:00", add: 49 * 5, want: "13:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddMinutes(tt.add))
		})
	}
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:05"))
	assert.False(t, TimeString("09:05").IsBefore("09:05"))
	assert.True(t, TimeString("09:10").IsAfter("09:05"))
	assert.False(t, TimeString("09:05").IsAfter("09:05"))
}

func TestWithSeconds(t *testing.T) {
	assert.Equal(t, "09:15:00", TimeString("09:15").WithSeconds())
}

func TestMinutesSinceMidnight(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").MinutesSinceMidnight())
	assert.Equal(t, 552, TimeString("09:12").MinutesSinceMidnight())
	assert.Equal(t, 1439, TimeString("23:59").MinutesSinceMidnight())
}
