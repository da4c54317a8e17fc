// Package dates holds the calendar-date arithmetic every rental computation
// runs on. Dates are time.Time values pinned to UTC midnight; all day math is
// whole-day subtraction, never elapsed-time division.
package dates

import "time"

const Layout = "2006-01-02"

// Parse parses a YYYY-MM-DD string into a UTC-midnight time.Time.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// ParseMonth parses a YYYY-MM period string into the first day of that month
// at UTC midnight.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse("2006-01", s)
}

// ToDate strips the time-of-day portion, keeping the calendar date in UTC.
func ToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayNumber is the number of days since the Unix epoch for t's UTC calendar
// date. Differences of day numbers give exact calendar-day spans.
func DayNumber(t time.Time) int {
	return int(ToDate(t).Unix() / 86400)
}

// Span is the number of calendar days from a to b, exclusive of b's day.
// Negative when b is before a.
func Span(a, b time.Time) int {
	return DayNumber(b) - DayNumber(a)
}

// Inclusive counts the calendar days covered by [a,b] including both
// endpoints: 1 for a same-day interval.
func Inclusive(a, b time.Time) int {
	return Span(a, b) + 1
}
