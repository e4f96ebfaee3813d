package schedule

import (
	"time"

	"github.com/alexanderramin/classjoin/internal/domain"
)

// Instant is the resolver's view of "now": a weekday plus a time of day,
// in the process-local time zone.
type Instant struct {
	Day  domain.Weekday
	Time domain.ClockTime
}

// Clock supplies the current instant. The interface exists so tests can
// pin resolution to a fixed point in the week.
type Clock interface {
	Now() Instant
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() Instant {
	now := time.Now()
	return Instant{
		Day:  domain.WeekdayOf(now.Weekday()),
		Time: domain.ClockTimeOf(now),
	}
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant Instant
}

func (c FixedClock) Now() Instant { return c.Instant }
