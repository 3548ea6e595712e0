package out

import (
	"context"

	"limber/internal/modules/workout/domain"
)

type SessionStore interface {
	// GetAll returns the full history, most recent first.
	GetAll(ctx context.Context) ([]domain.SessionLog, error)
	GetByID(ctx context.Context, id string) (domain.SessionLog, error)
	// GetByDate returns all sessions whose local start date equals dateISO
	// (YYYY-MM-DD).
	GetByDate(ctx context.Context, dateISO string) ([]domain.SessionLog, error)
	GetByDateRange(ctx context.Context, startISO, endISO string) ([]domain.SessionLog, error)
	Save(ctx context.Context, session domain.SessionLog) error
	Update(ctx context.Context, session domain.SessionLog) error
	Delete(ctx context.Context, id string) error
}
