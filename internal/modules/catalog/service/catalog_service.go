package service

import (
	"context"
	"fmt"

	"limber/internal/modules/catalog/domain"
	catalogout "limber/internal/modules/catalog/port/out"
)

type CatalogService struct {
	store catalogout.ExerciseStore
	seed  catalogout.SeedSource
}

func NewCatalogService(store catalogout.ExerciseStore, seed catalogout.SeedSource) *CatalogService {
	return &CatalogService{store: store, seed: seed}
}

func (s *CatalogService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.store.GetAll(ctx)
}

func (s *CatalogService) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Exercise, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	return s.store.GetByCategory(ctx, category)
}

func (s *CatalogService) GetExercise(ctx context.Context, id string) (domain.Exercise, error) {
	return s.store.GetByID(ctx, id)
}

// EnsureSeeded loads the bundled definition list into an empty store. It is
// idempotent: a non-empty catalog is left untouched.
func (s *CatalogService) EnsureSeeded(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	exercises, err := s.seed.Load()
	if err != nil {
		return fmt.Errorf("load seed exercises: %w", err)
	}
	for _, exercise := range exercises {
		if err := exercise.Validate(); err != nil {
			return fmt.Errorf("seed exercise %q: %w", exercise.ID, err)
		}
		if err := s.store.Save(ctx, exercise); err != nil {
			return err
		}
	}
	return nil
}
