// Package schedule resolves a weekly recurring timetable against the
// current instant: which event is inside its notification window right
// now, and how long to wait until the next one.
//
// Resolution is pure and never mutates the timetable, so concurrent
// callers may share one timetable as long as nobody writes to it.
package schedule

import (
	"sort"
	"time"

	"github.com/alexanderramin/classjoin/internal/domain"
)

const day = 24 * time.Hour

// Wakeup is the result of ResolveNextWakeup: how long to sleep before
// acting, the event the wake is for, and the weekday it falls on.
type Wakeup struct {
	Sleep time.Duration
	Event domain.Event
	Day   domain.Weekday
}

// sortedDay returns a copy of events ordered by time ascending. Events
// sharing a time keep their input order, so resolution is deterministic
// for a given timetable.
func sortedDay(events []domain.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// upcoming returns the earliest event of the day at or after now, i.e. the
// lower bound of now in the day's sorted events.
func upcoming(events []domain.Event, now domain.ClockTime) (domain.Event, bool) {
	if len(events) == 0 {
		return domain.Event{}, false
	}
	sorted := sortedDay(events)
	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i].Time >= now })
	if idx == len(sorted) {
		return domain.Event{}, false
	}
	return sorted[idx], true
}

// firstOfDay returns the event with the minimum time; the first one wins
// on equal times.
func firstOfDay(events []domain.Event) domain.Event {
	first := events[0]
	for _, ev := range events[1:] {
		if ev.Time < first.Time {
			first = ev
		}
	}
	return first
}

// ResolveActive reports the event whose notification window contains now,
// if any. Only today is consulted: an event is active when it is the next
// one remaining today and starts within lead of now. Events already in the
// past never match.
func ResolveActive(tt domain.Timetable, lead time.Duration, now Instant) (domain.Event, bool) {
	ev, ok := upcoming(tt[now.Day], now.Time)
	if !ok {
		return domain.Event{}, false
	}
	if ev.Time.Sub(now.Time) > lead {
		return domain.Event{}, false
	}
	return ev, true
}

// ResolveNextWakeup computes how long to wait until the next event's
// notification threshold, wrapping across day and week boundaries.
//
// Today's first remaining event always wins; when today is exhausted the
// week is walked forward one day at a time and the first non-empty day
// supplies its earliest event. Because the walk advances in whole days,
// that event is necessarily the soonest one, so no cross-day merge is
// needed. The second result is false only when the whole week has no
// events.
func ResolveNextWakeup(tt domain.Timetable, lead time.Duration, now Instant) (Wakeup, bool) {
	if ev, ok := upcoming(tt[now.Day], now.Time); ok {
		sleep := ev.Time.Sub(now.Time) - lead
		if sleep <= 0 {
			// Already inside the notification window.
			return Wakeup{Sleep: 0, Event: ev, Day: now.Day}, true
		}
		return Wakeup{Sleep: sleep, Event: ev, Day: now.Day}, true
	}

	cur := now.Day
	for diff := 1; diff <= 6; diff++ {
		cur = cur.Next()
		events := tt[cur]
		if len(events) == 0 {
			continue
		}
		ev := firstOfDay(events)

		// The notification threshold as a signed offset from the target
		// day's midnight; a large lead may push it before midnight, which
		// borrows from the whole-day count.
		notify := ev.Time.SinceMidnight() - lead
		sleep := time.Duration(diff)*day + notify - now.Time.SinceMidnight()
		if sleep < 0 {
			sleep = 0
		}
		return Wakeup{Sleep: sleep, Event: ev, Day: cur}, true
	}

	return Wakeup{}, false
}
