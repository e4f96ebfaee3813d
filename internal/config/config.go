// Package config loads and validates the classjoin configuration file: the
// weekly timetable, the event-to-command bindings, and the notification
// lead time.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/classjoin/internal/domain"
	"github.com/alexanderramin/classjoin/internal/launcher"
)

// EntryConfig is a single timetable entry: a time of day and the name of
// the event occurring then.
type EntryConfig struct {
	Time  string `yaml:"time"`
	Event string `yaml:"event"`
}

// CommandConfig is the argv of a launchable program.
type CommandConfig struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args"`
}

// Config is the top-level configuration file model.
type Config struct {
	// NotifyBefore is the notification lead time in minutes, applied
	// uniformly to every event.
	NotifyBefore int `yaml:"notify_before"`

	// Timetable maps weekday names ("mon".."sun" or full names) to the
	// entries scheduled on that day.
	Timetable map[string][]EntryConfig `yaml:"timetable"`

	// Events maps an event name to the name of the command to launch for it.
	Events map[string]string `yaml:"events"`

	// Commands maps command names to argv definitions.
	Commands map[string]CommandConfig `yaml:"commands"`
}

// DefaultConfig returns an in-memory default configuration with an empty
// timetable.
func DefaultConfig() *Config {
	return &Config{
		NotifyBefore: 5,
		Timetable:    map[string][]EntryConfig{},
		Events:       map[string]string{},
		Commands:     map[string]CommandConfig{},
	}
}

// Normalize fills in missing or zero values so partially-filled configs
// still behave.
func (c *Config) Normalize() {
	if c.NotifyBefore == 0 {
		c.NotifyBefore = 5
	}
	if c.Timetable == nil {
		c.Timetable = map[string][]EntryConfig{}
	}
	if c.Events == nil {
		c.Events = map[string]string{}
	}
	if c.Commands == nil {
		c.Commands = map[string]CommandConfig{}
	}
}

// Load reads the configuration from the given YAML path.
//
// When the file does not exist, a default config is written there (0600,
// parent directory created) and returned, so a first run leaves a file the
// user can edit.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return nil, fmt.Errorf("writing default config: %w", err)
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the configuration to path atomically (temp file + rename)
// with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".classjoin-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Validate checks cross-references and value ranges: every timetable entry
// must name a known event, every event a known command, every command a
// non-empty binary; days and times must parse.
func (c *Config) Validate() error {
	if c.NotifyBefore < 0 {
		return fmt.Errorf("notify_before must not be negative, got %d", c.NotifyBefore)
	}
	for dayName, entries := range c.Timetable {
		if _, err := domain.ParseWeekday(dayName); err != nil {
			return err
		}
		for _, entry := range entries {
			if _, err := domain.ParseClockTime(entry.Time); err != nil {
				return fmt.Errorf("timetable %s: %w", dayName, err)
			}
			if entry.Event == "" {
				return fmt.Errorf("timetable %s: entry at %s has no event name", dayName, entry.Time)
			}
			if _, ok := c.Events[entry.Event]; !ok {
				return fmt.Errorf("timetable %s: unknown event %q", dayName, entry.Event)
			}
		}
	}
	for event, commandName := range c.Events {
		if _, ok := c.Commands[commandName]; !ok {
			return fmt.Errorf("event %q: unknown command %q", event, commandName)
		}
	}
	for name, cmd := range c.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("command %q has no binary name", name)
		}
	}
	return nil
}

// NotifyLead returns the lead time as a duration.
func (c *Config) NotifyLead() time.Duration {
	return time.Duration(c.NotifyBefore) * time.Minute
}

// BuildTimetable converts the raw timetable section into the domain model.
// Days with no entries are omitted so absent and empty mean the same thing
// downstream. Load has already validated the config, so conversion of a
// loaded config never fails.
func (c *Config) BuildTimetable() (domain.Timetable, error) {
	tt := domain.Timetable{}
	for dayName, entries := range c.Timetable {
		day, err := domain.ParseWeekday(dayName)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			t, err := domain.ParseClockTime(entry.Time)
			if err != nil {
				return nil, fmt.Errorf("timetable %s: %w", dayName, err)
			}
			tt[day] = append(tt[day], domain.Event{Time: t, Name: entry.Event})
		}
	}
	return tt, nil
}

// CommandTable converts the command and event sections into the launcher's
// lookup table.
func (c *Config) CommandTable() launcher.Table {
	commands := make(map[string]launcher.Command, len(c.Commands))
	for name, cmd := range c.Commands {
		commands[name] = launcher.Command{Name: cmd.Name, Args: cmd.Args}
	}
	return launcher.NewTable(commands, c.Events)
}
