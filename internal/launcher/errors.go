package launcher

import "errors"

var (
	// ErrUnknownCommand indicates a command name absent from the config's
	// command table.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownEvent indicates an event name with no command binding.
	ErrUnknownEvent = errors.New("unknown event")
)
