package service

import (
	"context"
	"errors"

	"limber/internal/modules/settings/domain"
	settingsout "limber/internal/modules/settings/port/out"
	apperrors "limber/internal/platform/errors"
)

type SettingsService struct {
	store settingsout.SettingsStore
}

func NewSettingsService(store settingsout.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the stored settings, falling back to defaults when nothing
// has been saved yet.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.store.Load(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.Defaults(), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *SettingsService) Save(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.store.Save(ctx, settings)
}

func (s *SettingsService) Reset(ctx context.Context) (domain.Settings, error) {
	defaults := domain.Defaults()
	if err := s.store.Save(ctx, defaults); err != nil {
		return domain.Settings{}, err
	}
	return defaults, nil
}

func (s *SettingsService) Mutate(ctx context.Context, mutate func(*domain.Settings) error) (domain.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if err := mutate(&settings); err != nil {
		return domain.Settings{}, err
	}
	if err := s.Save(ctx, settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
