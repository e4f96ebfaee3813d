package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/classjoin/internal/config"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := starterConfig()

			if app.interactive() {
				if err := runInitForm(app.ConfigPath, cfg); err != nil {
					return err
				}
			} else if _, err := os.Stat(app.ConfigPath); err == nil {
				return fmt.Errorf("config already exists at %s", app.ConfigPath)
			}

			if err := config.Save(app.ConfigPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "wrote %s\n", app.ConfigPath)
			return nil
		},
	}
}

// runInitForm collects the notification lead and, when the file already
// exists, an overwrite confirmation.
func runInitForm(path string, cfg *config.Config) error {
	lead := strconv.Itoa(cfg.NotifyBefore)
	overwrite := false
	_, statErr := os.Stat(path)
	exists := statErr == nil

	fields := []huh.Field{
		huh.NewInput().
			Title("Notification lead (minutes)").
			Placeholder("5").
			Value(&lead).
			Validate(validatePositiveInt),
	}
	if exists {
		fields = append(fields, huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite %s?", path)).
			Value(&overwrite))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}
	if exists && !overwrite {
		return fmt.Errorf("keeping existing config at %s", path)
	}

	n, err := strconv.Atoi(lead)
	if err != nil {
		return fmt.Errorf("invalid lead %q: %w", lead, err)
	}
	cfg.NotifyBefore = n
	return nil
}

func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}

// starterConfig is the example config written by init: one event so a new
// user sees every section populated.
func starterConfig() *config.Config {
	return &config.Config{
		NotifyBefore: 5,
		Timetable: map[string][]config.EntryConfig{
			"mon": {{Time: "09:00", Event: "math"}},
		},
		Events: map[string]string{
			"math": "zoom-math",
		},
		Commands: map[string]config.CommandConfig{
			"zoom-math": {Name: "xdg-open", Args: []string{"https://zoom.example/j/123"}},
		},
	}
}
