package in

import (
	"context"

	"limber/internal/modules/workout/dto"
	workoutin "limber/internal/modules/workout/port/in"
)

type CLIHandler struct {
	usecase workoutin.Usecase
}

func NewCLIHandler(usecase workoutin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, routineID string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{RoutineID: routineID})
}

func (h CLIHandler) RecordCompletion(ctx context.Context, sessionID, exerciseID string, reps, seconds int) (dto.SessionOutput, error) {
	return h.usecase.RecordCompletion(ctx, dto.CompletionInput{
		SessionID:     sessionID,
		ExerciseID:    exerciseID,
		ActualReps:    reps,
		ActualSeconds: seconds,
	})
}

func (h CLIHandler) Finish(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	return h.usecase.Finish(ctx, sessionID)
}

func (h CLIHandler) Delete(ctx context.Context, sessionID string) error {
	return h.usecase.Delete(ctx, sessionID)
}

func (h CLIHandler) GetSession(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	return h.usecase.GetSession(ctx, sessionID)
}

func (h CLIHandler) ListSessions(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.ListSessions(ctx)
}

func (h CLIHandler) HasCompletedToday(ctx context.Context) (bool, error) {
	return h.usecase.HasCompletedToday(ctx)
}
