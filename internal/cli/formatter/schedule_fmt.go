package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/classjoin/internal/domain"
	"github.com/alexanderramin/classjoin/internal/schedule"
)

// FormatDuration renders a duration as a compact "6d 22h 59m" string.
// Sub-minute remainders show seconds; a zero duration renders as "now".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "now"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 && days == 0 && hours == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if len(parts) == 0 {
		return "now"
	}
	return strings.Join(parts, " ")
}

// FormatActive renders the active-event line printed by the root command.
func FormatActive(ev domain.Event) string {
	return fmt.Sprintf("%s %s %s\n",
		StyleGreen.Render("●"),
		Bold(ev.Name),
		Dim("at "+ev.Time.String()),
	)
}

// FormatWakeup renders the next-wakeup summary: event, day, time and wait.
func FormatWakeup(w schedule.Wakeup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		StyleBlue.Render("▸"),
		Bold(w.Event.Name),
		Dim(fmt.Sprintf("%s at %s", w.Day.Title(), w.Event.Time.String())),
	)
	fmt.Fprintf(&b, "  notify in %s\n", StyleYellow.Render(FormatDuration(w.Sleep)))
	return b.String()
}

// FormatWeek renders the whole timetable, Monday first, today highlighted.
// Days without events are dimmed.
func FormatWeek(tt domain.Timetable, today domain.Weekday) string {
	var b strings.Builder
	b.WriteString(Header("weekly schedule"))
	b.WriteString("\n")

	for _, day := range domain.WeekOrder {
		label := day.Title()
		if day == today {
			label = StyleHeader.Render(label + " (today)")
		} else {
			label = Bold(label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		events := tt[day]
		if len(events) == 0 {
			b.WriteString(Dim("  no events") + "\n")
			continue
		}
		for _, ev := range sortedByTime(events) {
			fmt.Fprintf(&b, "  %s  %s\n", StyleBlue.Render(ev.Time.String()), StyleFg.Render(ev.Name))
		}
	}
	return b.String()
}

// sortedByTime returns a copy of events ordered by time, preserving input
// order on ties. Display-only; the stored timetable stays untouched.
func sortedByTime(events []domain.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}
