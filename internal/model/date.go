package model

import "time"

// DateLayout is the calendar date format used everywhere a date crosses
// a boundary: storage rows, user input, and rendered output.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string. An empty string yields the zero
// time, meaning no date was recorded.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}

// FormatDate renders a date as YYYY-MM-DD, or the empty string for the
// zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
