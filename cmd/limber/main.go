package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"limber/internal/bootstrap"
	"limber/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "limber",
		Short:         "Guided stretching and mobility habit tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(), "data directory")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newExerciseCmd(&dataPath))
	root.AddCommand(newRoutineCmd(&dataPath))
	root.AddCommand(newSessionCmd(&dataPath))
	root.AddCommand(newStatsCmd(&dataPath))
	root.AddCommand(newSettingsCmd(&dataPath))
	root.AddCommand(newRemindCmd(&dataPath))
	return root
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".limber"
	}
	return home + "/.limber"
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run limber terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newExerciseCmd(dataPath *string) *cobra.Command {
	exercise := &cobra.Command{Use: "exercise", Short: "Exercise catalog commands"}

	var category string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog exercises",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			exercises, err := app.CatalogCLI.ListExercises(context.Background(), category)
			if err != nil {
				return err
			}
			if len(exercises) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no exercises")
				return nil
			}
			for _, e := range exercises {
				target := fmt.Sprintf("%ds", e.TargetSeconds)
				if e.Mode == "reps" {
					target = fmt.Sprintf("%d reps", e.TargetReps)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s x%d\n", e.ID, e.Category, e.Name, target, e.Sets)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&category, "category", "", "filter by category: mobility|strength|balance|stretch|breath")
	exercise.AddCommand(listCmd)

	var exerciseID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show exercise details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(exerciseID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			e, err := app.CatalogCLI.GetExercise(context.Background(), exerciseID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\ncategory: %s\nmode: %s\n", e.ID, e.Name, e.Category, e.Mode)
			if e.Mode == "reps" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "target: %d reps x%d sets\n", e.TargetReps, e.Sets)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "target: %ds x%d sets\n", e.TargetSeconds, e.Sets)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rest: %ds\n", e.RestSeconds)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "muscles: %s\n", strings.Join(e.Muscles, ", "))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), e.Description)
			for i, step := range e.Steps {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, step)
			}
			for _, cue := range e.FormCues {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cue: %s\n", cue)
			}
			for _, contra := range e.Contraindications {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "avoid if: %s\n", contra)
			}
			if e.Easier != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "easier: %s\n", e.Easier)
			}
			if e.Harder != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "harder: %s\n", e.Harder)
			}
			return nil
		},
	}
	show.Flags().StringVar(&exerciseID, "id", "", "exercise id")
	exercise.AddCommand(show)
	return exercise
}

func newRoutineCmd(dataPath *string) *cobra.Command {
	routine := &cobra.Command{Use: "routine", Short: "Routine commands"}

	routine.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List routines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			routines, err := app.RoutineCLI.ListRoutines(context.Background())
			if err != nil {
				return err
			}
			for _, r := range routines {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d exercise(s)\n", r.ID, r.Kind, r.Name, r.ExerciseCount)
			}
			return nil
		},
	})

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show a routine's plan and estimated duration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			r, err := app.RoutineCLI.GetRoutine(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\nkind: %s\nestimate: ~%d min\n", r.ID, r.Name, r.Kind, r.EstimateMinutes)
			for i, e := range r.Exercises {
				target := fmt.Sprintf("%ds", e.TargetSeconds)
				if e.Mode == "reps" {
					target = fmt.Sprintf("%d reps", e.TargetReps)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s)\n", i+1, e.Name, target)
			}
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "routine id")
	routine.AddCommand(show)

	var createName string
	var createExercises []string
	create := &cobra.Command{
		Use:   "create --name <name> --exercises <id,id,...>",
		Short: "Create a custom routine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.RoutineCLI.CreateRoutine(context.Background(), createName, createExercises)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "routine created: %s (%s)\n", out.Name, out.ID)
			return nil
		},
	}
	create.Flags().StringVar(&createName, "name", "", "routine name")
	create.Flags().StringSliceVar(&createExercises, "exercises", nil, "ordered exercise ids")
	routine.AddCommand(create)

	var deleteID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a custom routine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.RoutineCLI.DeleteRoutine(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "routine deleted: %s\n", deleteID)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "routine id")
	routine.AddCommand(deleteCmd)
	return routine
}

func newSessionCmd(dataPath *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Workout session lifecycle"}

	var routineID string
	start := &cobra.Command{
		Use:   "start --routine-id <id>",
		Short: "Start a workout session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(routineID) == "" {
				return fmt.Errorf("--routine-id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.WorkoutCLI.Start(context.Background(), routineID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started: %s routine=%s estimate=~%dmin\n", out.SessionID, out.RoutineName, out.EstimateMinutes)
			for i, e := range out.Playlist {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s)\n", i+1, e.Name, e.ID)
			}
			return nil
		},
	}
	start.Flags().StringVar(&routineID, "routine-id", "", "routine id")
	session.AddCommand(start)

	var completeSessionID, completeExerciseID string
	var reps, seconds int
	complete := &cobra.Command{
		Use:   "complete --session-id <id> --exercise-id <id>",
		Short: "Record an exercise completion within a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(completeSessionID) == "" || strings.TrimSpace(completeExerciseID) == "" {
				return fmt.Errorf("--session-id and --exercise-id are required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.WorkoutCLI.RecordCompletion(context.Background(), completeSessionID, completeExerciseID, reps, seconds)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded: %s done (%d logged this session)\n", completeExerciseID, len(out.Completions))
			return nil
		},
	}
	complete.Flags().StringVar(&completeSessionID, "session-id", "", "session id")
	complete.Flags().StringVar(&completeExerciseID, "exercise-id", "", "exercise id")
	complete.Flags().IntVar(&reps, "reps", 0, "actual reps performed")
	complete.Flags().IntVar(&seconds, "seconds", 0, "actual seconds held")
	session.AddCommand(complete)

	var finishSessionID string
	finish := &cobra.Command{
		Use:   "finish --session-id <id>",
		Short: "Finish a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(finishSessionID) == "" {
				return fmt.Errorf("--session-id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.WorkoutCLI.Finish(context.Background(), finishSessionID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session finished: %s duration=%dmin completed=%d exercise(s)\n", out.SessionID, out.DurationMinutes, len(out.Completions))
			return nil
		},
	}
	finish.Flags().StringVar(&finishSessionID, "session-id", "", "session id")
	session.AddCommand(finish)

	var deleteSessionID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a session from history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteSessionID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.WorkoutCLI.Delete(context.Background(), deleteSessionID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session deleted: %s\n", deleteSessionID)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteSessionID, "id", "", "session id")
	session.AddCommand(deleteCmd)

	session.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List session history, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			sessions, err := app.WorkoutCLI.ListSessions(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				state := "abandoned"
				if s.Completed {
					state = fmt.Sprintf("completed %dmin", s.DurationMinutes)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d exercise(s)\n", s.SessionID, s.StartedAt.Format(time.RFC3339), state, len(s.Completions))
			}
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Report whether a session was completed today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			done, err := app.WorkoutCLI.HasCompletedToday(context.Background())
			if err != nil {
				return err
			}
			if done {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "completed today")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not yet today")
			}
			return nil
		},
	})
	return session
}

func newStatsCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show streaks and completion statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.StatsCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current streak: %d day(s)\n", out.CurrentStreak)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "longest streak: %d day(s)\n", out.LongestStreak)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sessions: %d total, %d completed\n", out.TotalSessions, out.CompletedSessions)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completion rate: %.0f%%\n", out.CompletionRate*100)
			if !out.LastSessionDate.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "last session: %s\n", out.LastSessionDate.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func newSettingsCmd(dataPath *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "User preference commands"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SettingsCLI.Show(context.Background())
			if err != nil {
				return err
			}
			printSettings(cmd, out.NotificationsEnabled, out.MorningReminder, out.EveningReminder, out.SnoozeMinutes, out.DisabledExercises)
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a preference: notifications|morning-reminder|evening-reminder|snooze-minutes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SettingsCLI.Set(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			printSettings(cmd, out.NotificationsEnabled, out.MorningReminder, out.EveningReminder, out.SnoozeMinutes, out.DisabledExercises)
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset settings to defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SettingsCLI.Reset(context.Background())
			if err != nil {
				return err
			}
			printSettings(cmd, out.NotificationsEnabled, out.MorningReminder, out.EveningReminder, out.SnoozeMinutes, out.DisabledExercises)
			return nil
		},
	})

	var disableID string
	disable := &cobra.Command{
		Use:   "disable-exercise --id <id>",
		Short: "Exclude an exercise from future workout playlists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(disableID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.SettingsCLI.DisableExercise(context.Background(), disableID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exercise disabled: %s\n", disableID)
			return nil
		},
	}
	disable.Flags().StringVar(&disableID, "id", "", "exercise id")
	settings.AddCommand(disable)

	var enableID string
	enable := &cobra.Command{
		Use:   "enable-exercise --id <id>",
		Short: "Re-include a previously disabled exercise",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(enableID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.SettingsCLI.EnableExercise(context.Background(), enableID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exercise enabled: %s\n", enableID)
			return nil
		},
	}
	enable.Flags().StringVar(&enableID, "id", "", "exercise id")
	settings.AddCommand(enable)
	return settings
}

func printSettings(cmd *cobra.Command, notifications bool, morning, evening string, snooze int, disabled []string) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notifications: %t\n", notifications)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "morning-reminder: %s\n", morning)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "evening-reminder: %s\n", evening)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "snooze-minutes: %d\n", snooze)
	if len(disabled) > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "disabled-exercises: %s\n", strings.Join(disabled, ", "))
	}
}

func newRemindCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the reminder scheduler in the foreground",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if err := app.Reminders.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
