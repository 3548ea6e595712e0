package in

import (
	"context"

	"limber/internal/modules/routine/dto"
	routinein "limber/internal/modules/routine/port/in"
)

type CLIHandler struct {
	usecase routinein.Usecase
}

func NewCLIHandler(usecase routinein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListRoutines(ctx context.Context) ([]dto.RoutineOutput, error) {
	return h.usecase.ListRoutines(ctx)
}

func (h CLIHandler) GetRoutine(ctx context.Context, id string) (dto.RoutineDetailOutput, error) {
	return h.usecase.GetRoutine(ctx, id)
}

func (h CLIHandler) CreateRoutine(ctx context.Context, name string, exerciseIDs []string) (dto.RoutineOutput, error) {
	return h.usecase.CreateRoutine(ctx, dto.CreateInput{Name: name, ExerciseIDs: exerciseIDs})
}

func (h CLIHandler) DeleteRoutine(ctx context.Context, id string) error {
	return h.usecase.DeleteRoutine(ctx, id)
}
