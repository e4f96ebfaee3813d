package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/classjoin/internal/domain"
)

// at builds an instant from a weekday and an "HH:MM[:SS]" string.
func at(t *testing.T, day domain.Weekday, clock string) Instant {
	t.Helper()
	ct, err := domain.ParseClockTime(clock)
	require.NoError(t, err)
	return Instant{Day: day, Time: ct}
}

// ev builds an event from an "HH:MM[:SS]" string.
func ev(t *testing.T, clock, name string) domain.Event {
	t.Helper()
	ct, err := domain.ParseClockTime(clock)
	require.NoError(t, err)
	return domain.Event{Time: ct, Name: name}
}

func TestResolveActive_WithinWindow(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {ev(t, "09:00", "math")}}

	got, ok := ResolveActive(tt, 5*time.Minute, at(t, domain.Monday, "08:56"))
	require.True(t, ok, "08:56 is inside the 5-minute window before 09:00")
	assert.Equal(t, "math", got.Name)
}

func TestResolveActive_OutsideWindow(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {ev(t, "09:00", "math")}}

	_, ok := ResolveActive(tt, 5*time.Minute, at(t, domain.Monday, "08:50"))
	assert.False(t, ok, "08:50 is 10 minutes early, outside a 5-minute lead")
}

func TestResolveActive_ExactEventTime(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {ev(t, "09:00", "math")}}

	got, ok := ResolveActive(tt, 5*time.Minute, at(t, domain.Monday, "09:00"))
	require.True(t, ok, "gap of zero is within any non-negative lead")
	assert.Equal(t, "math", got.Name)
}

func TestResolveActive_PastEventsNeverMatch(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {ev(t, "09:00", "math")}}

	_, ok := ResolveActive(tt, 5*time.Minute, at(t, domain.Monday, "09:00:01"))
	assert.False(t, ok, "one second past the event it is no longer upcoming")
}

func TestResolveActive_IsTodayScoped(t *testing.T) {
	// Tuesday 23:59 with a Wednesday event one minute later: still no match,
	// active resolution never looks at other days.
	tt := domain.Timetable{domain.Wednesday: {ev(t, "00:00", "early")}}

	_, ok := ResolveActive(tt, 30*time.Minute, at(t, domain.Tuesday, "23:59"))
	assert.False(t, ok)
}

func TestResolveActive_EmptyAndAbsentDays(t *testing.T) {
	now := at(t, domain.Monday, "09:00")

	_, ok := ResolveActive(domain.Timetable{}, time.Minute, now)
	assert.False(t, ok, "absent day")

	_, ok = ResolveActive(domain.Timetable{domain.Monday: {}}, time.Minute, now)
	assert.False(t, ok, "present but empty day behaves like an absent one")
}

func TestResolveActive_PicksFirstUpcomingOfUnsortedDay(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {
		ev(t, "14:00", "physics"),
		ev(t, "09:00", "math"),
		ev(t, "11:00", "chemistry"),
	}}

	got, ok := ResolveActive(tt, 15*time.Minute, at(t, domain.Monday, "10:50"))
	require.True(t, ok)
	assert.Equal(t, "chemistry", got.Name, "the lower bound of 10:50 is 11:00 regardless of input order")
}

func TestResolveNextWakeup_LaterToday(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {ev(t, "09:00", "math")}}

	wake, ok := ResolveNextWakeup(tt, 5*time.Minute, at(t, domain.Monday, "08:50"))
	require.True(t, ok)
	assert.Equal(t, 5*time.Minute, wake.Sleep, "wait runs to the notify threshold at 08:55")
	assert.Equal(t, "math", wake.Event.Name)
	assert.Equal(t, domain.Monday, wake.Day)
}

func TestResolveNextWakeup_InsideWindowIsImmediate(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {ev(t, "09:00", "math")}}

	wake, ok := ResolveNextWakeup(tt, 5*time.Minute, at(t, domain.Monday, "08:56"))
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), wake.Sleep, "already inside the notification window")
	assert.Equal(t, "math", wake.Event.Name)
}

func TestResolveNextWakeup_ActiveImpliesZeroSleep(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {ev(t, "09:00", "math")}}
	now := at(t, domain.Monday, "08:57")

	active, ok := ResolveActive(tt, 5*time.Minute, now)
	require.True(t, ok)

	wake, ok := ResolveNextWakeup(tt, 5*time.Minute, now)
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), wake.Sleep)
	assert.Equal(t, active, wake.Event, "both resolutions agree on the event")
}

func TestResolveNextWakeup_SkipsPastEventsToday(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {
		ev(t, "09:00", "a"),
		ev(t, "14:00", "b"),
	}}

	wake, ok := ResolveNextWakeup(tt, 5*time.Minute, at(t, domain.Monday, "10:00"))
	require.True(t, ok)
	assert.Equal(t, "b", wake.Event.Name, "09:00 is already past")
	assert.Equal(t, 3*time.Hour+55*time.Minute, wake.Sleep)
}

func TestResolveNextWakeup_TomorrowWhenTodayExhausted(t *testing.T) {
	tt := domain.Timetable{
		domain.Monday:  {ev(t, "09:00", "math")},
		domain.Tuesday: {ev(t, "10:00", "physics")},
	}

	wake, ok := ResolveNextWakeup(tt, 5*time.Minute, at(t, domain.Monday, "12:00"))
	require.True(t, ok)
	assert.Equal(t, "physics", wake.Event.Name)
	assert.Equal(t, domain.Tuesday, wake.Day)
	// Monday 12:00 to Tuesday 09:55.
	assert.Equal(t, 21*time.Hour+55*time.Minute, wake.Sleep)
}

func TestResolveNextWakeup_FullWeekWrap(t *testing.T) {
	// The only event of the week is Monday 09:00 and it is Tuesday 10:00,
	// so the walk has to wrap all the way around.
	tt := domain.Timetable{domain.Monday: {ev(t, "09:00", "math")}}

	wake, ok := ResolveNextWakeup(tt, 5*time.Minute, at(t, domain.Tuesday, "10:00"))
	require.True(t, ok)
	assert.Equal(t, "math", wake.Event.Name)
	assert.Equal(t, domain.Monday, wake.Day)
	// Tuesday 10:00 to next Monday's 08:55 threshold: 5 full days plus 22h55m.
	assert.Equal(t, 5*24*time.Hour+22*time.Hour+55*time.Minute, wake.Sleep)
}

func TestResolveNextWakeup_WalkPicksDayMinimumNotLowerBound(t *testing.T) {
	// Once the walk leaves today, now's time of day is irrelevant: the
	// target day's earliest event wins even though it is before 22:00.
	tt := domain.Timetable{
		domain.Wednesday: {ev(t, "16:00", "late"), ev(t, "08:00", "early")},
	}

	wake, ok := ResolveNextWakeup(tt, 0, at(t, domain.Tuesday, "22:00"))
	require.True(t, ok)
	assert.Equal(t, "early", wake.Event.Name)
	// Tuesday 22:00 to Wednesday 08:00 = 10h.
	assert.Equal(t, 10*time.Hour, wake.Sleep)
}

func TestResolveNextWakeup_LeadPushesThresholdBeforeMidnight(t *testing.T) {
	// Wednesday 00:30 event with a 60-minute lead: the notify threshold is
	// Tuesday 23:30, borrowing a day from the walk.
	tt := domain.Timetable{domain.Wednesday: {ev(t, "00:30", "redeye")}}

	wake, ok := ResolveNextWakeup(tt, time.Hour, at(t, domain.Tuesday, "20:00"))
	require.True(t, ok)
	assert.Equal(t, "redeye", wake.Event.Name)
	// Tuesday 20:00 to Tuesday 23:30.
	assert.Equal(t, 3*time.Hour+30*time.Minute, wake.Sleep)
}

func TestResolveNextWakeup_EmptyWeek(t *testing.T) {
	_, ok := ResolveNextWakeup(domain.Timetable{}, 5*time.Minute, at(t, domain.Friday, "12:00"))
	assert.False(t, ok)

	_, activeOK := ResolveActive(domain.Timetable{}, 5*time.Minute, at(t, domain.Friday, "12:00"))
	assert.False(t, activeOK)
}

func TestResolveNextWakeup_SkipsEmptyDays(t *testing.T) {
	tt := domain.Timetable{
		domain.Tuesday: {},
		domain.Friday:  {ev(t, "07:00", "gym")},
	}

	wake, ok := ResolveNextWakeup(tt, 0, at(t, domain.Monday, "12:00"))
	require.True(t, ok)
	assert.Equal(t, "gym", wake.Event.Name)
	assert.Equal(t, domain.Friday, wake.Day)
	assert.Equal(t, 4*24*time.Hour-5*time.Hour, wake.Sleep, "Monday 12:00 to Friday 07:00")
}

func TestResolveNextWakeup_EqualTimesTieBreakByInputOrder(t *testing.T) {
	tt := domain.Timetable{domain.Monday: {
		ev(t, "09:00", "first"),
		ev(t, "09:00", "second"),
	}}

	wake, ok := ResolveNextWakeup(tt, 0, at(t, domain.Monday, "08:00"))
	require.True(t, ok)
	assert.Equal(t, "first", wake.Event.Name, "stable ordering keeps input order on equal times")

	active, ok := ResolveActive(tt, 2*time.Hour, at(t, domain.Monday, "08:00"))
	require.True(t, ok)
	assert.Equal(t, "first", active.Name)
}

func TestResolve_DoesNotMutateTimetable(t *testing.T) {
	day := []domain.Event{
		ev(t, "14:00", "b"),
		ev(t, "09:00", "a"),
	}
	tt := domain.Timetable{domain.Monday: day}

	_, _ = ResolveActive(tt, time.Minute, at(t, domain.Monday, "08:00"))
	_, _ = ResolveNextWakeup(tt, time.Minute, at(t, domain.Monday, "08:00"))

	assert.Equal(t, "b", day[0].Name, "stored slice keeps its original order")
	assert.Equal(t, "a", day[1].Name)
}
