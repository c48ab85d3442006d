// utils/dates.go
package utils

import "time"

// DayFormat is the wire format for date-only values.
const DayFormat = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// DayString renders a time as a date-only wire value.
func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a date-only wire value.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DayFormat, value)
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
