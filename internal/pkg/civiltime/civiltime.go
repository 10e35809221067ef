// Package civiltime is the single source of civil date and time arithmetic
// for the whole system. Every component that needs "today", a wall-clock
// minute count, or a date range iterates through here, so the classifier,
// payroll and reports always agree on date boundaries.
package civiltime

import (
	"fmt"
	"time"
)

// Zone is the fixed civil timezone (UTC+8) all dates and times are
// expressed in. No other timezone conversion is applied anywhere.
var Zone = time.FixedZone("UTC+8", 8*60*60)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Now returns the current instant in the civil timezone.
func Now() time.Time {
	return time.Now().In(Zone)
}

// Today returns the current calendar date, truncated to midnight civil time.
func Today() time.Time {
	return DateOf(Now())
}

// DateOf strips the time component from t, keeping the civil calendar date.
func DateOf(t time.Time) time.Time {
	local := t.In(Zone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Zone)
}

// MinuteOfDay returns the minutes elapsed since civil midnight for t.
func MinuteOfDay(t time.Time) int {
	local := t.In(Zone)
	return local.Hour()*60 + local.Minute()
}

// ParseDate parses a "YYYY-MM-DD" string as a civil calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseClock parses an "HH:MM" wall-clock string and returns it as minutes
// since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

// DaysInclusive counts the calendar days from start to end, both included.
// Returns 0 when end is before start.
func DaysInclusive(start, end time.Time) int {
	s, e := DateOf(start), DateOf(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
