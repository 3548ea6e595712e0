package in

import (
	"context"

	"limber/internal/modules/catalog/dto"
	catalogin "limber/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListExercises(ctx context.Context, category string) ([]dto.ExerciseOutput, error) {
	if category != "" {
		return h.usecase.ListByCategory(ctx, category)
	}
	return h.usecase.ListExercises(ctx)
}

func (h CLIHandler) GetExercise(ctx context.Context, id string) (dto.ExerciseDetailOutput, error) {
	return h.usecase.GetExercise(ctx, id)
}
