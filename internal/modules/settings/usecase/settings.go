package usecase

import (
	"context"
	"strconv"

	"limber/internal/modules/settings/domain"
	"limber/internal/modules/settings/dto"
	settingsin "limber/internal/modules/settings/port/in"
	"limber/internal/modules/settings/service"
	apperrors "limber/internal/platform/errors"
)

const (
	KeyNotifications   = "notifications"
	KeyMorningReminder = "morning-reminder"
	KeyEveningReminder = "evening-reminder"
	KeySnoozeMinutes   = "snooze-minutes"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.svc.Get(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Set(ctx context.Context, input dto.SetInput) (dto.SettingsOutput, error) {
	settings, err := i.svc.Mutate(ctx, func(s *domain.Settings) error {
		return apply(s, input.Key, input.Value)
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.svc.Reset(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) DisableExercise(ctx context.Context, exerciseID string) (dto.SettingsOutput, error) {
	settings, err := i.svc.Mutate(ctx, func(s *domain.Settings) error {
		s.Disable(exerciseID)
		return nil
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) EnableExercise(ctx context.Context, exerciseID string) (dto.SettingsOutput, error) {
	settings, err := i.svc.Mutate(ctx, func(s *domain.Settings) error {
		s.Enable(exerciseID)
		return nil
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func apply(s *domain.Settings, key, value string) error {
	switch key {
	case KeyNotifications:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.Invalid("notifications must be true or false, got %q", value)
		}
		s.NotificationsEnabled = enabled
	case KeyMorningReminder:
		s.MorningReminder = value
	case KeyEveningReminder:
		s.EveningReminder = value
	case KeySnoozeMinutes:
		minutes, err := strconv.Atoi(value)
		if err != nil {
			return apperrors.Invalid("snooze minutes must be a number, got %q", value)
		}
		s.SnoozeMinutes = minutes
	default:
		return apperrors.Invalid("unknown setting %q", key)
	}
	return nil
}

func toOutput(s domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{
		NotificationsEnabled: s.NotificationsEnabled,
		MorningReminder:      s.MorningReminder,
		EveningReminder:      s.EveningReminder,
		SnoozeMinutes:        s.SnoozeMinutes,
		DisabledExercises:    append([]string(nil), s.DisabledExercises...),
	}
}
