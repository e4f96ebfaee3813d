package domain

// Event is one scheduled occurrence on a weekday: a time of day and the
// name of the timetable entry it belongs to. Events are plain values and
// are copied freely.
type Event struct {
	Time ClockTime
	Name string
}

// Timetable maps weekdays to the events scheduled on them. A missing key
// and a present-but-empty slice both mean "no events that day". Per-day
// slices are not required to be sorted; resolution orders a copy and never
// mutates the stored slices.
type Timetable map[Weekday][]Event

// Empty reports whether no day in the timetable has any events.
func (tt Timetable) Empty() bool {
	for _, events := range tt {
		if len(events) > 0 {
			return false
		}
	}
	return true
}

// EventCount returns the total number of events across the week.
func (tt Timetable) EventCount() int {
	n := 0
	for _, events := range tt {
		n += len(events)
	}
	return n
}
