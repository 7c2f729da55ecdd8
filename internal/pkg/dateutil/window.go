// Package dateutil provides calendar-day windows for matching
// date-stamped quiz records.
package dateutil

import "time"

// DayFormat is the wire format for quiz days.
const DayFormat = "2006-01-02"

// Window is the half-open interval [Start, End) covering one calendar
// day. A record belongs to the day when Start <= t < End.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Day returns the canonical day bucket of the window.
func (w Window) Day() time.Time {
	return w.Start
}

// DayWindow truncates t to midnight in loc and returns the window
// [midnight, midnight+1d). AddDate is used rather than a fixed 24h so
// the window stays one calendar day across DST transitions.
func DayWindow(t time.Time, loc *time.Location) Window {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// Today returns the window for the current day in loc.
func Today(loc *time.Location) Window {
	return DayWindow(time.Now(), loc)
}

// Truncate returns the canonical day bucket for t in loc.
func Truncate(t time.Time, loc *time.Location) time.Time {
	return DayWindow(t, loc).Start
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayFormat, value, loc)
}
