package out

import (
	"context"

	"limber/internal/modules/routine/domain"
)

type RoutineStore interface {
	GetAll(ctx context.Context) ([]domain.Routine, error)
	GetByID(ctx context.Context, id string) (domain.Routine, error)
	// GetByKind returns the single routine of a default kind, or ErrNotFound.
	// At most one morning and one evening routine exist at a time.
	GetByKind(ctx context.Context, kind domain.Kind) (domain.Routine, error)
	Save(ctx context.Context, routine domain.Routine) error
	Update(ctx context.Context, routine domain.Routine) error
	Delete(ctx context.Context, id string) error
}
