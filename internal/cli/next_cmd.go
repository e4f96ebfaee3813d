package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/classjoin/internal/cli/formatter"
	"github.com/alexanderramin/classjoin/internal/schedule"
)

func newNextCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next event and how long until its notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(); err != nil {
				return err
			}

			if watch {
				if !app.interactive() {
					return errors.New("--watch requires an interactive terminal")
				}
				model := newWatchModel(app.Timetable, app.Config.NotifyLead(), app.Clock)
				_, err := tea.NewProgram(model, tea.WithOutput(app.Out)).Run()
				return err
			}

			wake, ok := schedule.ResolveNextWakeup(app.Timetable, app.Config.NotifyLead(), app.Clock.Now())
			if !ok {
				fmt.Fprintln(app.Out, "no events scheduled")
				return nil
			}
			fmt.Fprint(app.Out, formatter.FormatWakeup(wake))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Live countdown until the next event")

	return cmd
}

func newScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Show the full weekly timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(); err != nil {
				return err
			}
			fmt.Fprint(app.Out, formatter.FormatWeek(app.Timetable, app.Clock.Now().Day))
			return nil
		},
	}
}
