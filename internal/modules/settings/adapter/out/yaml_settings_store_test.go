package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	out "limber/internal/modules/settings/adapter/out"
	"limber/internal/modules/settings/domain"
	apperrors "limber/internal/platform/errors"
)

func TestLoadMissingFileReportsNotFound(t *testing.T) {
	t.Parallel()
	store := out.NewYAMLSettingsStore(filepath.Join(t.TempDir(), "settings.yaml"))

	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for missing file, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	store := out.NewYAMLSettingsStore(filepath.Join(t.TempDir(), "nested", "settings.yaml"))
	ctx := context.Background()

	want := domain.Settings{
		NotificationsEnabled: true,
		MorningReminder:      "06:15",
		EveningReminder:      "22:30",
		SnoozeMinutes:        5,
		DisabledExercises:    []string{"plank", "wall-sit"},
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MorningReminder != want.MorningReminder || got.EveningReminder != want.EveningReminder {
		t.Fatalf("reminder times lost in round trip: %+v", got)
	}
	if got.SnoozeMinutes != want.SnoozeMinutes || !got.NotificationsEnabled {
		t.Fatalf("scalar fields lost in round trip: %+v", got)
	}
	if len(got.DisabledExercises) != 2 || got.DisabledExercises[0] != "plank" {
		t.Fatalf("disabled exercises lost in round trip: %v", got.DisabledExercises)
	}
}
