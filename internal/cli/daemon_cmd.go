package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/classjoin/internal/daemon"
)

func newDaemonCmd(app *App) *cobra.Command {
	var noRun bool

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run in the foreground, launching each event as it comes up",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				<-sigCh
				cancel()
			}()

			d := &daemon.Daemon{
				Timetable: app.Timetable,
				Lead:      app.Config.NotifyLead(),
				Clock:     app.Clock,
				Table:     app.Table,
				Launcher:  app.Launcher,
				Notifier:  app.Notifier,
				Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
				NoRun:     noRun,
			}
			return d.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&noRun, "no-run", false, "Notify only, never launch commands")

	return cmd
}
