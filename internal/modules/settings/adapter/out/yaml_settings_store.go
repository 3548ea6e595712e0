package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"limber/internal/modules/settings/domain"
	settingsout "limber/internal/modules/settings/port/out"
	apperrors "limber/internal/platform/errors"
)

type YAMLSettingsStore struct {
	path string
}

func NewYAMLSettingsStore(path string) settingsout.SettingsStore {
	return &YAMLSettingsStore{path: path}
}

type settingsFile struct {
	Notifications     bool     `yaml:"notifications"`
	MorningReminder   string   `yaml:"morning_reminder"`
	EveningReminder   string   `yaml:"evening_reminder"`
	SnoozeMinutes     int      `yaml:"snooze_minutes"`
	DisabledExercises []string `yaml:"disabled_exercises,omitempty"`
}

func (s *YAMLSettingsStore) Load(_ context.Context) (domain.Settings, error) {
	payload, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.Settings{}, apperrors.NotFound("settings", s.path)
	}
	if err != nil {
		return domain.Settings{}, apperrors.Storage("read settings", err)
	}
	var file settingsFile
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return domain.Settings{}, apperrors.Storage("parse settings", fmt.Errorf("%s: %w", s.path, err))
	}
	return domain.Settings{
		NotificationsEnabled: file.Notifications,
		MorningReminder:      file.MorningReminder,
		EveningReminder:      file.EveningReminder,
		SnoozeMinutes:        file.SnoozeMinutes,
		DisabledExercises:    file.DisabledExercises,
	}, nil
}

func (s *YAMLSettingsStore) Save(_ context.Context, settings domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.Storage("create settings dir", err)
	}
	payload, err := yaml.Marshal(settingsFile{
		Notifications:     settings.NotificationsEnabled,
		MorningReminder:   settings.MorningReminder,
		EveningReminder:   settings.EveningReminder,
		SnoozeMinutes:     settings.SnoozeMinutes,
		DisabledExercises: settings.DisabledExercises,
	})
	if err != nil {
		return apperrors.Storage("encode settings", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return apperrors.Storage("write settings", err)
	}
	return nil
}
