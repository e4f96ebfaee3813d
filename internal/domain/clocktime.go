package domain

import (
	"fmt"
	"time"
)

// ClockTime is a time of day with second resolution, stored as seconds
// since local midnight. It carries no date component.
type ClockTime int

const secondsPerDay = 24 * 60 * 60

// NewClockTime builds a ClockTime from hour, minute and second components.
func NewClockTime(hour, minute, second int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range: %d", minute)
	}
	if second < 0 || second > 59 {
		return 0, fmt.Errorf("second out of range: %d", second)
	}
	return ClockTime(hour*3600 + minute*60 + second), nil
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS".
func ParseClockTime(s string) (ClockTime, error) {
	var hour, minute, second int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &hour, &minute, &second); err != nil {
		second = 0
		if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	t, err := NewClockTime(hour, minute, second)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t, nil
}

// ClockTimeOf extracts the time-of-day component of t.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

func (t ClockTime) Hour() int   { return int(t) / 3600 }
func (t ClockTime) Minute() int { return int(t) / 60 % 60 }
func (t ClockTime) Second() int { return int(t) % 60 }

// Valid reports whether t lies within 00:00:00–23:59:59.
func (t ClockTime) Valid() bool {
	return t >= 0 && t < secondsPerDay
}

// Sub returns the signed duration from o to t.
func (t ClockTime) Sub(o ClockTime) time.Duration {
	return time.Duration(t-o) * time.Second
}

// SinceMidnight returns t as a duration past midnight.
func (t ClockTime) SinceMidnight() time.Duration {
	return time.Duration(t) * time.Second
}

// String renders "HH:MM" when the seconds component is zero, else "HH:MM:SS".
func (t ClockTime) String() string {
	if t.Second() == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
