package in

import (
	"context"

	"limber/internal/modules/catalog/dto"
)

type Usecase interface {
	ListExercises(ctx context.Context) ([]dto.ExerciseOutput, error)
	ListByCategory(ctx context.Context, category string) ([]dto.ExerciseOutput, error)
	GetExercise(ctx context.Context, id string) (dto.ExerciseDetailOutput, error)
	EnsureSeeded(ctx context.Context) error
}
