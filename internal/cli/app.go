package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/classjoin/internal/config"
	"github.com/alexanderramin/classjoin/internal/domain"
	"github.com/alexanderramin/classjoin/internal/launcher"
	"github.com/alexanderramin/classjoin/internal/notify"
	"github.com/alexanderramin/classjoin/internal/schedule"
)

// App holds the collaborators CLI commands work against. main wires the
// real implementations; tests substitute fakes and preload Config.
type App struct {
	// ConfigPath is where the config is read from. The --config flag
	// overrides it before any command runs.
	ConfigPath string

	Launcher launcher.Launcher
	Notifier notify.Notifier
	Clock    schedule.Clock
	Out      io.Writer

	// IsInteractive reports whether stdin/stdout are a terminal. Gates
	// the watch view and the init form.
	IsInteractive func() bool

	// Populated by load; preset in tests to skip file access.
	Config    *config.Config
	Timetable domain.Timetable
	Table     launcher.Table
}

// load reads and converts the config. Idempotent; commands that need the
// timetable call it from their RunE.
func (a *App) load() error {
	if a.Config == nil {
		cfg, err := config.Load(a.ConfigPath)
		if err != nil {
			return err
		}
		a.Config = cfg
	}
	if a.Timetable == nil {
		tt, err := a.Config.BuildTimetable()
		if err != nil {
			return err
		}
		a.Timetable = tt
		a.Table = a.Config.CommandTable()
	}
	return nil
}

// runCommand launches cmd, or prints it when noRun is set.
func (a *App) runCommand(cmd launcher.Command, noRun bool) error {
	if noRun {
		fmt.Fprintln(a.Out, cmd.String())
		return nil
	}
	return a.Launcher.Launch(cmd)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
