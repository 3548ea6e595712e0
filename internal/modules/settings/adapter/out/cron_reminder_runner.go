package out

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/robfig/cron"

	settingsin "limber/internal/modules/settings/port/in"
	workoutin "limber/internal/modules/workout/port/in"
	apperrors "limber/internal/platform/errors"
)

// CronReminderRunner schedules the morning and evening reminders and blocks
// until the context is cancelled. Reminders that fire after a session was
// already completed today stay silent.
type CronReminderRunner struct {
	settings settingsin.Usecase
	workouts workoutin.Usecase
	out      io.Writer
}

func NewCronReminderRunner(settings settingsin.Usecase, workouts workoutin.Usecase, out io.Writer) *CronReminderRunner {
	return &CronReminderRunner{settings: settings, workouts: workouts, out: out}
}

func (r *CronReminderRunner) Run(ctx context.Context) error {
	current, err := r.settings.Get(ctx)
	if err != nil {
		return err
	}
	if !current.NotificationsEnabled {
		fmt.Fprintln(r.out, "notifications are disabled; nothing to schedule")
		return nil
	}

	scheduler := cron.New()
	entries := []struct {
		at      string
		message string
	}{
		{current.MorningReminder, "time for your morning routine"},
		{current.EveningReminder, "time for your evening routine"},
	}
	for _, entry := range entries {
		spec, err := cronSpec(entry.at)
		if err != nil {
			return err
		}
		message := entry.message
		if err := scheduler.AddFunc(spec, func() { r.fire(ctx, message) }); err != nil {
			return fmt.Errorf("schedule reminder: %w", err)
		}
	}

	scheduler.Start()
	defer scheduler.Stop()
	<-ctx.Done()
	return ctx.Err()
}

func (r *CronReminderRunner) fire(ctx context.Context, message string) {
	done, err := r.workouts.HasCompletedToday(ctx)
	if err == nil && done {
		return
	}
	fmt.Fprintln(r.out, message)
}

// cronSpec converts an HH:mm wall-clock time into a six-field cron spec
// firing once a day at that time.
func cronSpec(clock string) (string, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return "", apperrors.Invalid("%q is not a valid HH:mm time", clock)
	}
	return fmt.Sprintf("0 %s %s * * *", parts[1], parts[0]), nil
}
