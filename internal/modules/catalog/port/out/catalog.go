package out

import (
	"context"

	"limber/internal/modules/catalog/domain"
)

type ExerciseStore interface {
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id string) (domain.Exercise, error)
	GetByCategory(ctx context.Context, category domain.Category) ([]domain.Exercise, error)
	Save(ctx context.Context, exercise domain.Exercise) error
	Update(ctx context.Context, exercise domain.Exercise) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// SeedSource provides the fixed definition list loaded at first launch.
type SeedSource interface {
	Load() ([]domain.Exercise, error)
}
