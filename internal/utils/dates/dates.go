// Package dates works with calendar dates stored as fixed-width YYYY-MM-DD strings.
// Because the format is fixed-width, plain string comparison orders dates correctly.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the only accepted date format.
const Layout = "2006-01-02"

// Parse parses a YYYY-MM-DD string as midnight UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// IsValid reports whether s is a well-formed date.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// IsBlank reports whether an optional date is missing or whitespace.
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Today returns the current calendar date in loc (UTC when loc is nil).
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return Format(now.In(loc))
}

// AddDays shifts a date string by n days.
func AddDays(s string, n int) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// AddMonthsClamped adds n calendar months to t, clamping the day to the last
// day of the target month instead of overflowing into the next one.
func AddMonthsClamped(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// InRange reports whether from <= d <= to. Empty bounds are open.
func InRange(d, from, to string) bool {
	if from != "" && d < from {
		return false
	}
	if to != "" && d > to {
		return false
	}
	return true
}

// SpanDays counts the calendar days from start to end inclusive. An inverted
// range counts zero or less.
func SpanDays(start, end string) (int, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := Parse(end)
	if err != nil {
		return 0, err
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// Days lists every date from start to end inclusive.
func Days(start, end string) ([]string, error) {
	s, err := Parse(start)
	if err != nil {
		return nil, err
	}
	e, err := Parse(end)
	if err != nil {
		return nil, err
	}
	if e.Before(s) {
		return nil, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	out := make([]string, 0, int(e.Sub(s).Hours()/24)+1)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		out = append(out, Format(d))
	}
	return out, nil
}

// MonthBounds returns the first and last day of a calendar month.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Format(first), Format(first.AddDate(0, 1, -1))
}

// PreviousMonth returns the year and month before the given one.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return prev.Year(), prev.Month()
}

// Deref returns the value of an optional date or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
