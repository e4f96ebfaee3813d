package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLaunchCmd(app *App) *cobra.Command {
	var noRun bool

	cmd := &cobra.Command{
		Use:   "launch <command>",
		Short: "Launch a command from the config by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(); err != nil {
				return err
			}
			command, err := app.Table.Command(args[0])
			if err != nil {
				return err
			}
			return app.runCommand(command, noRun)
		},
	}

	cmd.Flags().BoolVar(&noRun, "no-run", false, "Print the command instead of launching it")

	return cmd
}

func newEventCmd(app *App) *cobra.Command {
	var noRun bool

	cmd := &cobra.Command{
		Use:   "event <event>",
		Short: "Launch the command bound to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(); err != nil {
				return err
			}
			command, err := app.Table.EventCommand(args[0])
			if err != nil {
				return err
			}
			return app.runCommand(command, noRun)
		},
	}

	cmd.Flags().BoolVar(&noRun, "no-run", false, "Print the command instead of launching it")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [command]",
		Short: "Print a command's argv, or list all commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(); err != nil {
				return err
			}
			if len(args) == 0 {
				for _, name := range app.Table.CommandNames() {
					command, err := app.Table.Command(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(app.Out, "%s: %s\n", name, command.String())
				}
				return nil
			}
			command, err := app.Table.Command(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, command.String())
			return nil
		},
	}
}
