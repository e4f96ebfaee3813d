package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/classjoin/internal/cli/formatter"
	"github.com/alexanderramin/classjoin/internal/domain"
	"github.com/alexanderramin/classjoin/internal/schedule"
)

// watchKeyMap holds the key bindings for the countdown view.
type watchKeyMap struct {
	Quit key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k watchKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

var watchKeys = watchKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// tickMsg fires once a second to re-resolve the countdown.
type tickMsg time.Time

// watchModel is the bubbletea model behind "classjoin next --watch": a
// live countdown to the next event's notification threshold.
type watchModel struct {
	timetable domain.Timetable
	lead      time.Duration
	clock     schedule.Clock

	wake schedule.Wakeup
	ok   bool

	help     help.Model
	quitting bool
}

func newWatchModel(tt domain.Timetable, lead time.Duration, clock schedule.Clock) watchModel {
	m := watchModel{
		timetable: tt,
		lead:      lead,
		clock:     clock,
		help:      help.New(),
	}
	m.resolve()
	return m
}

func (m *watchModel) resolve() {
	m.wake, m.ok = schedule.ResolveNextWakeup(m.timetable, m.lead, m.clock.Now())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, watchKeys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		m.resolve()
		return m, tick()
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ok {
		return formatter.Dim("no events scheduled") + "\n"
	}

	s := formatter.Header("next event") + "\n"
	s += formatter.FormatWakeup(m.wake)
	s += "\n" + m.help.View(watchKeys) + "\n"
	return s
}
