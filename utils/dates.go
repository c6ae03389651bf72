// utils/dates.go
package utils

import "time"

// DateLayout is the calendar date format used by the booking form.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date in the local timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// IsPastDay reports whether date falls on a calendar day strictly before
// now's calendar day, ignoring time-of-day.
func IsPastDay(date, now time.Time) bool {
	return BeginningOfDay(date).Before(BeginningOfDay(now))
}
