package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the upstream calendar date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// DateTimeLayout is the upstream date format with a time of day.
	DateTimeLayout = "2006-01-02 15:04:05"
	// DisplayLayout renders dates for people, e.g. "05 Jan 2021".
	DisplayLayout = "02 Jan 2006"
)

// ParseError reports a value that did not match the expected layout.
type ParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("timeutil: cannot parse %q with layout %q: %v", e.Value, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads value using layout in loc. A nil loc means UTC.
func Parse(value, layout string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Layout: layout, Err: err}
	}
	return t, nil
}

// Format renders t using layout in loc. A nil loc means the process local zone.
func Format(t time.Time, layout string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(layout)
}

// ParseDate parses a YYYY-MM-DD date string in UTC.
func ParseDate(value string) (time.Time, error) {
	return Parse(value, DateLayout, time.UTC)
}

// ParseAPIDate accepts the upstream date form with or without a time of day, in UTC.
func ParseAPIDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) > len(DateLayout) {
		return Parse(value, DateTimeLayout, time.UTC)
	}
	return Parse(value, DateLayout, time.UTC)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// PreviousCalendarDay moves t back one calendar day in its own location.
// Wall clock is kept, so a day that is 23 or 25 hours long is still one day.
func PreviousCalendarDay(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

// ResolveLocation returns a location for a tz name, or nil if empty or invalid.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}
