// Package notify delivers desktop notifications.
package notify

import "github.com/gen2brain/beeep"

// Notifier posts a user-visible notification.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop posts notifications through the platform notification service
// (D-Bus on Linux, Notification Center on macOS, toasts on Windows).
type Desktop struct{}

func (Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Noop discards notifications. Used with --no-run and in tests.
type Noop struct{}

func (Noop) Notify(string, string) error { return nil }
