package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	out "limber/internal/modules/settings/adapter/out"
	"limber/internal/modules/settings/dto"
	settingsin "limber/internal/modules/settings/port/in"
	"limber/internal/modules/settings/service"
	"limber/internal/modules/settings/usecase"
	apperrors "limber/internal/platform/errors"
)

func newSettingsUC(t *testing.T) settingsin.Usecase {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	return usecase.NewInteractor(service.NewSettingsService(out.NewYAMLSettingsStore(path)))
}

func TestGetReturnsDefaultsBeforeFirstSave(t *testing.T) {
	t.Parallel()
	uc := newSettingsUC(t)

	got, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.NotificationsEnabled || got.MorningReminder != "07:30" || got.EveningReminder != "21:00" || got.SnoozeMinutes != 10 {
		t.Fatalf("unexpected defaults %+v", got)
	}
}

func TestSetPersistsAndValidates(t *testing.T) {
	t.Parallel()
	uc := newSettingsUC(t)
	ctx := context.Background()

	got, err := uc.Set(ctx, dto.SetInput{Key: "morning-reminder", Value: "06:45"})
	if err != nil {
		t.Fatalf("set morning reminder: %v", err)
	}
	if got.MorningReminder != "06:45" {
		t.Fatalf("expected 06:45, got %s", got.MorningReminder)
	}

	reloaded, err := uc.Get(ctx)
	if err != nil {
		t.Fatalf("get after set: %v", err)
	}
	if reloaded.MorningReminder != "06:45" {
		t.Fatalf("set must persist across loads, got %s", reloaded.MorningReminder)
	}

	if _, err := uc.Set(ctx, dto.SetInput{Key: "evening-reminder", Value: "25:00"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("out-of-range clock value must fail, got %v", err)
	}
	if _, err := uc.Set(ctx, dto.SetInput{Key: "snooze-minutes", Value: "soon"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("non-numeric snooze must fail, got %v", err)
	}
	if _, err := uc.Set(ctx, dto.SetInput{Key: "snooze-minutes", Value: "0"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("zero snooze must fail, got %v", err)
	}
	if _, err := uc.Set(ctx, dto.SetInput{Key: "volume", Value: "11"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown key must fail, got %v", err)
	}

	if _, err := uc.Set(ctx, dto.SetInput{Key: "notifications", Value: "false"}); err != nil {
		t.Fatalf("set notifications: %v", err)
	}
	reloaded, err = uc.Get(ctx)
	if err != nil {
		t.Fatalf("get after notifications: %v", err)
	}
	if reloaded.NotificationsEnabled {
		t.Fatalf("notifications must be off")
	}
}

func TestDisableEnableExerciseRoundTrip(t *testing.T) {
	t.Parallel()
	uc := newSettingsUC(t)
	ctx := context.Background()

	got, err := uc.DisableExercise(ctx, "plank")
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if len(got.DisabledExercises) != 1 || got.DisabledExercises[0] != "plank" {
		t.Fatalf("expected plank disabled, got %v", got.DisabledExercises)
	}

	// Disabling twice stays a single entry.
	got, err = uc.DisableExercise(ctx, "plank")
	if err != nil {
		t.Fatalf("second disable: %v", err)
	}
	if len(got.DisabledExercises) != 1 {
		t.Fatalf("disable must be idempotent, got %v", got.DisabledExercises)
	}

	got, err = uc.EnableExercise(ctx, "plank")
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if len(got.DisabledExercises) != 0 {
		t.Fatalf("expected empty disabled set, got %v", got.DisabledExercises)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()
	uc := newSettingsUC(t)
	ctx := context.Background()

	if _, err := uc.Set(ctx, dto.SetInput{Key: "morning-reminder", Value: "05:00"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := uc.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got.MorningReminder != "07:30" || !got.NotificationsEnabled {
		t.Fatalf("reset must restore defaults, got %+v", got)
	}
}
