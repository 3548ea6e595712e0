package in

import (
	"context"

	"limber/internal/modules/routine/dto"
)

type Usecase interface {
	ListRoutines(ctx context.Context) ([]dto.RoutineOutput, error)
	GetRoutine(ctx context.Context, id string) (dto.RoutineDetailOutput, error)
	// ResolveExercises expands a routine into concrete exercises, silently
	// skipping ids that no longer exist in the catalog.
	ResolveExercises(ctx context.Context, routineID string) (dto.ResolveOutput, error)
	CreateRoutine(ctx context.Context, input dto.CreateInput) (dto.RoutineOutput, error)
	DeleteRoutine(ctx context.Context, id string) error
	EnsureDefaults(ctx context.Context) error
}
