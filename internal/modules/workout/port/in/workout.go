package in

import (
	"context"

	"limber/internal/modules/workout/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	RecordCompletion(ctx context.Context, input dto.CompletionInput) (dto.SessionOutput, error)
	Finish(ctx context.Context, sessionID string) (dto.SessionOutput, error)
	Delete(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) (dto.SessionOutput, error)
	ListSessions(ctx context.Context) ([]dto.SessionOutput, error)
	HasCompletedToday(ctx context.Context) (bool, error)
}
