package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/classjoin/internal/cli/formatter"
	"github.com/alexanderramin/classjoin/internal/schedule"
)

// NewRootCmd creates the top-level "classjoin" command and registers all
// subcommands against the provided App.
//
// Running the root command with no subcommand resolves the currently
// active event and launches its command, mirroring a "join whatever is on
// right now" invocation.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string
	var noRun bool

	root := &cobra.Command{
		Use:   "classjoin",
		Short: "Launch commands from a weekly timetable",
		Long: "classjoin keeps a weekly timetable of named events, each bound to a\n" +
			"command. Run it bare to join the event that is on right now, or run\n" +
			"the daemon to get launched into every event as it comes up.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath != "" {
				app.ConfigPath = configPath
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActive(app, noRun)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file")
	root.Flags().BoolVar(&noRun, "no-run", false, "Print the command instead of launching it")

	root.AddCommand(
		newDaemonCmd(app),
		newLaunchCmd(app),
		newEventCmd(app),
		newShowCmd(app),
		newNextCmd(app),
		newScheduleCmd(app),
		newInitCmd(app),
	)

	return root
}

// runActive resolves today's active event and launches it.
func runActive(app *App, noRun bool) error {
	if err := app.load(); err != nil {
		return err
	}

	ev, ok := schedule.ResolveActive(app.Timetable, app.Config.NotifyLead(), app.Clock.Now())
	if !ok {
		fmt.Fprintln(app.Out, "no class")
		return nil
	}

	fmt.Fprint(app.Out, formatter.FormatActive(ev))

	cmd, err := app.Table.EventCommand(ev.Name)
	if err != nil {
		return err
	}
	return app.runCommand(cmd, noRun)
}
