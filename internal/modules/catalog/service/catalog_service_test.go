package service_test

import (
	"context"
	"errors"
	"testing"

	"limber/internal/modules/catalog/domain"
	"limber/internal/modules/catalog/service"
	apperrors "limber/internal/platform/errors"
)

type fakeExerciseStore struct {
	exercises map[string]domain.Exercise
	saves     int
}

func newFakeExerciseStore() *fakeExerciseStore {
	return &fakeExerciseStore{exercises: make(map[string]domain.Exercise)}
}

func (s *fakeExerciseStore) GetAll(context.Context) ([]domain.Exercise, error) {
	out := make([]domain.Exercise, 0, len(s.exercises))
	for _, e := range s.exercises {
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeExerciseStore) GetByID(_ context.Context, id string) (domain.Exercise, error) {
	e, ok := s.exercises[id]
	if !ok {
		return domain.Exercise{}, apperrors.NotFound("exercise", id)
	}
	return e, nil
}

func (s *fakeExerciseStore) GetByCategory(_ context.Context, category domain.Category) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, e := range s.exercises {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeExerciseStore) Save(_ context.Context, e domain.Exercise) error {
	s.exercises[e.ID] = e
	s.saves++
	return nil
}

func (s *fakeExerciseStore) Update(_ context.Context, e domain.Exercise) error {
	s.exercises[e.ID] = e
	return nil
}

func (s *fakeExerciseStore) Delete(_ context.Context, id string) error {
	delete(s.exercises, id)
	return nil
}

func (s *fakeExerciseStore) Count(context.Context) (int, error) {
	return len(s.exercises), nil
}

type fakeSeed struct {
	exercises []domain.Exercise
}

func (f fakeSeed) Load() ([]domain.Exercise, error) { return f.exercises, nil }

func seedExercise(id string) domain.Exercise {
	return domain.Exercise{
		ID:            id,
		Name:          id,
		Description:   "desc",
		Category:      domain.CategoryStretch,
		Mode:          domain.ModeDuration,
		TargetSeconds: 30,
		Sets:          1,
	}
}

func TestEnsureSeededLoadsOnce(t *testing.T) {
	t.Parallel()
	store := newFakeExerciseStore()
	svc := service.NewCatalogService(store, fakeSeed{exercises: []domain.Exercise{
		seedExercise("neck-rolls"), seedExercise("cat-cow"),
	}})
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if store.saves != 2 {
		t.Fatalf("expected 2 saves, got %d", store.saves)
	}
	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if store.saves != 2 {
		t.Fatalf("non-empty store must not be reseeded, got %d saves", store.saves)
	}
}

func TestEnsureSeededRejectsInvalidDefinitions(t *testing.T) {
	t.Parallel()
	bad := seedExercise("broken")
	bad.TargetSeconds = 0
	svc := service.NewCatalogService(newFakeExerciseStore(), fakeSeed{exercises: []domain.Exercise{bad}})

	if err := svc.EnsureSeeded(context.Background()); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("invalid seed definition must fail, got %v", err)
	}
}

func TestListByCategoryValidatesCategory(t *testing.T) {
	t.Parallel()
	store := newFakeExerciseStore()
	store.exercises["plank"] = seedExercise("plank")
	svc := service.NewCatalogService(store, fakeSeed{})

	if _, err := svc.ListByCategory(context.Background(), "cardio"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown category must fail, got %v", err)
	}
	out, err := svc.ListByCategory(context.Background(), domain.CategoryStretch)
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 stretch exercise, got %d", len(out))
	}
}
