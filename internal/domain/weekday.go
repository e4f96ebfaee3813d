package domain

import (
	"fmt"
	"strings"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekOrder is the canonical cyclic sequence of weekdays, Monday first.
var WeekOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// weekdayAliases maps the short config forms to canonical weekdays.
var weekdayAliases = map[string]Weekday{
	"mon": Monday, "tue": Tuesday, "wed": Wednesday, "thu": Thursday,
	"fri": Friday, "sat": Saturday, "sun": Sunday,
}

// Next returns the weekday following d, wrapping Sunday back to Monday.
func (d Weekday) Next() Weekday {
	switch d {
	case Monday:
		return Tuesday
	case Tuesday:
		return Wednesday
	case Wednesday:
		return Thursday
	case Thursday:
		return Friday
	case Friday:
		return Saturday
	case Saturday:
		return Sunday
	default:
		return Monday
	}
}

// Valid reports whether d is one of the seven canonical weekdays.
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Title returns the capitalized display form, e.g. "Monday".
func (d Weekday) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// ParseWeekday accepts both the short config forms ("mon".."sun") and full
// weekday names, case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdayAliases[lower]; ok {
		return d, nil
	}
	if d := Weekday(lower); d.Valid() {
		return d, nil
	}
	return "", fmt.Errorf("invalid weekday %q", s)
}

// WeekdayOf maps the stdlib weekday to the domain value.
func WeekdayOf(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
