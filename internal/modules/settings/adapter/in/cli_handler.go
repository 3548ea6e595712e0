package in

import (
	"context"

	"limber/internal/modules/settings/dto"
	settingsin "limber/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Set(ctx context.Context, key, value string) (dto.SettingsOutput, error) {
	return h.usecase.Set(ctx, dto.SetInput{Key: key, Value: value})
}

func (h CLIHandler) Reset(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) DisableExercise(ctx context.Context, exerciseID string) (dto.SettingsOutput, error) {
	return h.usecase.DisableExercise(ctx, exerciseID)
}

func (h CLIHandler) EnableExercise(ctx context.Context, exerciseID string) (dto.SettingsOutput, error) {
	return h.usecase.EnableExercise(ctx, exerciseID)
}
