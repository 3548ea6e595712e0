package in

import (
	"context"

	"limber/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	Set(ctx context.Context, input dto.SetInput) (dto.SettingsOutput, error)
	Reset(ctx context.Context) (dto.SettingsOutput, error)
	DisableExercise(ctx context.Context, exerciseID string) (dto.SettingsOutput, error)
	EnableExercise(ctx context.Context, exerciseID string) (dto.SettingsOutput, error)
}
