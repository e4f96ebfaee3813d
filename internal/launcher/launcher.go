// Package launcher resolves event and command names to argv definitions
// and starts them as detached child processes.
package launcher

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Command is one launchable program with its arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command the way it would be typed in a shell.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Table resolves command names and event names to commands. It is built
// once from the loaded config and is read-only afterwards.
type Table struct {
	commands map[string]Command
	events   map[string]string // event name -> command name
}

// NewTable builds a lookup table from the command definitions and the
// event-to-command bindings.
func NewTable(commands map[string]Command, events map[string]string) Table {
	return Table{commands: commands, events: events}
}

// Command looks up a command by its name.
func (t Table) Command(name string) (Command, error) {
	cmd, ok := t.commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return cmd, nil
}

// EventCommand resolves an event name to its bound command.
func (t Table) EventCommand(event string) (Command, error) {
	commandName, ok := t.events[event]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	cmd, ok := t.commands[commandName]
	if !ok {
		return Command{}, fmt.Errorf("event %q: %w: %q", event, ErrUnknownCommand, commandName)
	}
	return cmd, nil
}

// CommandNames returns the known command names in sorted order.
func (t Table) CommandNames() []string {
	names := make([]string, 0, len(t.commands))
	for name := range t.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Launcher starts a command without waiting for it to finish.
type Launcher interface {
	Launch(cmd Command) error
}

// ExecLauncher spawns commands as detached child processes. The child's
// stdio is not inherited; classjoin only fires it off.
type ExecLauncher struct{}

func (ExecLauncher) Launch(cmd Command) error {
	child := exec.Command(cmd.Name, cmd.Args...)
	if err := child.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", cmd.Name, err)
	}
	// Let the child outlive us without becoming our zombie.
	return child.Process.Release()
}
