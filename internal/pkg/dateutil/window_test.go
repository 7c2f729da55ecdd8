package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	utc := time.UTC

	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
	}{
		{
			name:      "midnight maps to itself",
			input:     time.Date(2024, 3, 1, 0, 0, 0, 0, utc),
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, utc),
		},
		{
			name:      "mid-day truncates down",
			input:     time.Date(2024, 3, 1, 13, 45, 12, 999, utc),
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, utc),
		},
		{
			name:      "last instant of the day stays on the day",
			input:     time.Date(2024, 3, 1, 23, 59, 59, 999999999, utc),
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, utc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DayWindow(tt.input, utc)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 1), w.End)
			assert.True(t, w.Contains(tt.input), "input must fall inside its own window")
		})
	}
}

func TestDayWindowHalfOpen(t *testing.T) {
	utc := time.UTC
	w := DayWindow(time.Date(2024, 3, 1, 10, 0, 0, 0, utc), utc)

	assert.True(t, w.Contains(w.Start), "start is included")
	assert.False(t, w.Contains(w.End), "end is excluded")
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
	assert.True(t, w.Contains(w.End.Add(-time.Nanosecond)))
}

func TestDayWindowDST(t *testing.T) {
	// On a spring-forward day the window is 23 hours long but still
	// spans exactly one calendar day.
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	w := DayWindow(time.Date(2024, 3, 31, 12, 0, 0, 0, loc), loc)
	assert.Equal(t, 31, w.Start.Day())
	assert.Equal(t, time.April, w.End.Month())
	assert.Equal(t, 1, w.End.Day())
	assert.Equal(t, 23*time.Hour, w.End.Sub(w.Start))
}

func TestDayWindowConvertsZone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 2024-03-01 20:30 UTC is already 2024-03-02 in Kolkata.
	utcEvening := time.Date(2024, 3, 1, 20, 30, 0, 0, time.UTC)
	w := DayWindow(utcEvening, loc)
	assert.Equal(t, 2, w.Start.Day())
	assert.True(t, w.Contains(utcEvening))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("01/03/2024", time.UTC)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	got := Truncate(time.Date(2024, 3, 1, 18, 2, 3, 4, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
}
