// Package daemon runs the foreground wake/launch/notify loop: sleep until
// the next event's notification threshold, launch its command, post a
// notification, then guard against re-triggering the same event.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/classjoin/internal/domain"
	"github.com/alexanderramin/classjoin/internal/launcher"
	"github.com/alexanderramin/classjoin/internal/notify"
	"github.com/alexanderramin/classjoin/internal/schedule"
)

// ErrEmptyTimetable indicates there is no event anywhere in the week, so
// the daemon has nothing to schedule.
var ErrEmptyTimetable = errors.New("timetable has no events")

// Daemon holds the loop's collaborators. All fields are read-only once
// Run is called.
type Daemon struct {
	Timetable domain.Timetable
	Lead      time.Duration
	Clock     schedule.Clock
	Table     launcher.Table
	Launcher  launcher.Launcher
	Notifier  notify.Notifier
	Logger    *slog.Logger

	// NoRun suppresses command launching; notifications are still posted.
	NoRun bool

	// Sleep, when non-nil, replaces the context-aware sleep. Tests use it
	// to drive the loop without real waiting.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run loops until the context is cancelled. A cancelled context is a clean
// shutdown, not an error.
func (d *Daemon) Run(ctx context.Context) error {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.NewString())

	// Once an event has fired, wait out its whole window plus a minute so
	// the next resolution does not pick the same event again.
	retriggerGuard := d.Lead + time.Minute

	logger.Info("daemon started",
		"events", d.Timetable.EventCount(),
		"notify_lead", d.Lead.String(),
	)

	for {
		wake, ok := schedule.ResolveNextWakeup(d.Timetable, d.Lead, d.Clock.Now())
		if !ok {
			return ErrEmptyTimetable
		}

		logger.Info("sleeping until next event",
			"event", wake.Event.Name,
			"at", wake.Event.Time.String(),
			"sleep", wake.Sleep.String(),
		)
		if err := d.sleep(ctx, wake.Sleep); err != nil {
			return d.shutdown(logger, err)
		}

		d.fire(logger, wake.Event)

		if err := d.sleep(ctx, retriggerGuard); err != nil {
			return d.shutdown(logger, err)
		}
	}
}

// fire launches the event's command and posts the notification. Failures
// are logged and the loop keeps going; a broken command must not kill the
// daemon.
func (d *Daemon) fire(logger *slog.Logger, ev domain.Event) {
	if !d.NoRun {
		cmd, err := d.Table.EventCommand(ev.Name)
		if err != nil {
			logger.Error("event has no runnable command", "event", ev.Name, "error", err.Error())
		} else if err := d.Launcher.Launch(cmd); err != nil {
			logger.Error("launch failed", "event", ev.Name, "command", cmd.String(), "error", err.Error())
		} else {
			logger.Info("launched", "event", ev.Name, "command", cmd.String())
		}
	}

	title := fmt.Sprintf("%s - classjoin", ev.Name)
	if err := d.Notifier.Notify(title, "event starting"); err != nil {
		logger.Error("notification failed", "event", ev.Name, "error", err.Error())
	}
}

func (d *Daemon) sleep(ctx context.Context, dur time.Duration) error {
	if d.Sleep != nil {
		return d.Sleep(ctx, dur)
	}
	return sleepContext(ctx, dur)
}

func (d *Daemon) shutdown(logger *slog.Logger, err error) error {
	if errors.Is(err, context.Canceled) {
		logger.Info("daemon stopped")
		return nil
	}
	return err
}

// sleepContext blocks for dur or until the context is cancelled.
func sleepContext(ctx context.Context, dur time.Duration) error {
	if dur <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(dur)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
