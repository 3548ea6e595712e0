package domain

import (
	"time"

	apperrors "limber/internal/platform/errors"
)

// Settings holds the user preferences that survive across runs. Reminder
// times are local wall-clock values in HH:mm form.
type Settings struct {
	NotificationsEnabled bool
	MorningReminder      string
	EveningReminder      string
	SnoozeMinutes        int
	DisabledExercises    []string
}

func Defaults() Settings {
	return Settings{
		NotificationsEnabled: true,
		MorningReminder:      "07:30",
		EveningReminder:      "21:00",
		SnoozeMinutes:        10,
	}
}

func (s Settings) Validate() error {
	if err := validateClock(s.MorningReminder); err != nil {
		return apperrors.Invalid("morning reminder: %v", err)
	}
	if err := validateClock(s.EveningReminder); err != nil {
		return apperrors.Invalid("evening reminder: %v", err)
	}
	if s.SnoozeMinutes <= 0 {
		return apperrors.Invalid("snooze minutes must be positive, got %d", s.SnoozeMinutes)
	}
	return nil
}

func validateClock(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return apperrors.Invalid("%q is not a valid HH:mm time", value)
	}
	return nil
}

// Disable adds the exercise id to the disabled set. Adding an already
// disabled id is a no-op.
func (s *Settings) Disable(exerciseID string) {
	for _, id := range s.DisabledExercises {
		if id == exerciseID {
			return
		}
	}
	s.DisabledExercises = append(s.DisabledExercises, exerciseID)
}

func (s *Settings) Enable(exerciseID string) {
	for i, id := range s.DisabledExercises {
		if id == exerciseID {
			s.DisabledExercises = append(s.DisabledExercises[:i], s.DisabledExercises[i+1:]...)
			return
		}
	}
}

func (s Settings) IsDisabled(exerciseID string) bool {
	for _, id := range s.DisabledExercises {
		if id == exerciseID {
			return true
		}
	}
	return false
}
