package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/classjoin/internal/cli"
	"github.com/alexanderramin/classjoin/internal/launcher"
	"github.com/alexanderramin/classjoin/internal/notify"
	"github.com/alexanderramin/classjoin/internal/schedule"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine config path: env var or default under the XDG config dir.
	configPath := os.Getenv("CLASSJOIN_CONFIG")
	if configPath == "" {
		dir := os.Getenv("XDG_CONFIG_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			dir = filepath.Join(home, ".config")
		}
		configPath = filepath.Join(dir, "classjoin", "config.yaml")
	}

	app := &cli.App{
		ConfigPath: configPath,
		Launcher:   launcher.ExecLauncher{},
		Notifier:   notify.Desktop{},
		Clock:      schedule.SystemClock{},
		Out:        os.Stdout,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
