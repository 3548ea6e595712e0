package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	catalogdto "limber/internal/modules/catalog/dto"
	"limber/internal/modules/routine/domain"
	"limber/internal/modules/routine/dto"
	routinein "limber/internal/modules/routine/port/in"
	"limber/internal/modules/routine/service"
	"limber/internal/modules/routine/usecase"
	apperrors "limber/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeID struct{ next int }

func (f *fakeID) New() string {
	f.next++
	return fmt.Sprintf("rt-%d", f.next)
}

type fakeRoutineStore struct {
	routines map[string]domain.Routine
}

func newFakeRoutineStore() *fakeRoutineStore {
	return &fakeRoutineStore{routines: make(map[string]domain.Routine)}
}

func (s *fakeRoutineStore) GetAll(context.Context) ([]domain.Routine, error) {
	out := make([]domain.Routine, 0, len(s.routines))
	for _, r := range s.routines {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeRoutineStore) GetByID(_ context.Context, id string) (domain.Routine, error) {
	r, ok := s.routines[id]
	if !ok {
		return domain.Routine{}, apperrors.NotFound("routine", id)
	}
	return r, nil
}

func (s *fakeRoutineStore) GetByKind(_ context.Context, kind domain.Kind) (domain.Routine, error) {
	for _, r := range s.routines {
		if r.Kind == kind {
			return r, nil
		}
	}
	return domain.Routine{}, apperrors.NotFound("routine", string(kind))
}

func (s *fakeRoutineStore) Save(_ context.Context, r domain.Routine) error {
	s.routines[r.ID] = r
	return nil
}

func (s *fakeRoutineStore) Update(_ context.Context, r domain.Routine) error {
	s.routines[r.ID] = r
	return nil
}

func (s *fakeRoutineStore) Delete(_ context.Context, id string) error {
	if _, ok := s.routines[id]; !ok {
		return apperrors.NotFound("routine", id)
	}
	delete(s.routines, id)
	return nil
}

// fakeCatalog serves a fixed set of duration exercises, 60 seconds each.
type fakeCatalog struct {
	known map[string]bool
}

func (f fakeCatalog) ListExercises(context.Context) ([]catalogdto.ExerciseOutput, error) {
	return nil, nil
}

func (f fakeCatalog) ListByCategory(context.Context, string) ([]catalogdto.ExerciseOutput, error) {
	return nil, nil
}

func (f fakeCatalog) GetExercise(_ context.Context, id string) (catalogdto.ExerciseDetailOutput, error) {
	if !f.known[id] {
		return catalogdto.ExerciseDetailOutput{}, apperrors.NotFound("exercise", id)
	}
	return catalogdto.ExerciseDetailOutput{
		ExerciseOutput: catalogdto.ExerciseOutput{
			ID:            id,
			Name:          strings.ToUpper(id[:1]) + id[1:],
			Mode:          "duration",
			TargetSeconds: 60,
		},
	}, nil
}

func (f fakeCatalog) EnsureSeeded(context.Context) error { return nil }

func newInteractor(store *fakeRoutineStore, catalog fakeCatalog) routinein.Usecase {
	clk := fakeClock{now: time.Date(2026, 8, 28, 7, 0, 0, 0, time.Local)}
	return usecase.NewInteractor(service.NewRoutineService(clk, &fakeID{}, store), catalog)
}

func TestEnsureDefaultsSeedsOnceAndIsIdempotent(t *testing.T) {
	t.Parallel()
	store := newFakeRoutineStore()
	uc := newInteractor(store, fakeCatalog{})

	if err := uc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("first ensure defaults: %v", err)
	}
	if len(store.routines) != 2 {
		t.Fatalf("expected morning and evening seeded, got %d routines", len(store.routines))
	}
	if err := uc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("second ensure defaults: %v", err)
	}
	if len(store.routines) != 2 {
		t.Fatalf("second run must not duplicate defaults, got %d routines", len(store.routines))
	}
}

func TestCreateRoutineValidatesInOrder(t *testing.T) {
	t.Parallel()
	uc := newInteractor(newFakeRoutineStore(), fakeCatalog{known: map[string]bool{"plank": true}})
	ctx := context.Background()

	_, err := uc.CreateRoutine(ctx, dto.CreateInput{Name: "  ", ExerciseIDs: []string{"ghost"}})
	if !errors.Is(err, apperrors.ErrInvalidInput) || !strings.Contains(err.Error(), "name") {
		t.Fatalf("blank name must fail first, got %v", err)
	}

	_, err = uc.CreateRoutine(ctx, dto.CreateInput{Name: "Desk Break"})
	if !errors.Is(err, apperrors.ErrInvalidInput) || !strings.Contains(err.Error(), "at least one") {
		t.Fatalf("empty exercise list must fail, got %v", err)
	}

	_, err = uc.CreateRoutine(ctx, dto.CreateInput{Name: "Desk Break", ExerciseIDs: []string{"plank", "ghost"}})
	if !errors.Is(err, apperrors.ErrInvalidInput) || !strings.Contains(err.Error(), "ghost") {
		t.Fatalf("unknown exercise id must be named in the error, got %v", err)
	}

	out, err := uc.CreateRoutine(ctx, dto.CreateInput{Name: "Desk Break", ExerciseIDs: []string{"plank"}})
	if err != nil {
		t.Fatalf("valid create: %v", err)
	}
	if out.Kind != "custom" || out.ID == "" {
		t.Fatalf("created routine must be custom with an id, got %+v", out)
	}
}

func TestDeleteRoutineForbidsDefaults(t *testing.T) {
	t.Parallel()
	store := newFakeRoutineStore()
	catalog := fakeCatalog{known: map[string]bool{"plank": true}}
	uc := newInteractor(store, catalog)
	ctx := context.Background()

	if err := uc.EnsureDefaults(ctx); err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}
	var defaultID string
	for id, r := range store.routines {
		if r.Kind == domain.KindMorning {
			defaultID = id
		}
	}
	if err := uc.DeleteRoutine(ctx, defaultID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("deleting a default routine must be forbidden, got %v", err)
	}

	custom, err := uc.CreateRoutine(ctx, dto.CreateInput{Name: "Desk Break", ExerciseIDs: []string{"plank"}})
	if err != nil {
		t.Fatalf("create custom: %v", err)
	}
	if err := uc.DeleteRoutine(ctx, custom.ID); err != nil {
		t.Fatalf("deleting a custom routine: %v", err)
	}
	if err := uc.DeleteRoutine(ctx, custom.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
}

func TestResolveExercisesSkipsStaleIDs(t *testing.T) {
	t.Parallel()
	store := newFakeRoutineStore()
	store.routines["rt-1"] = domain.Routine{
		ID:          "rt-1",
		Name:        "Desk Break",
		Kind:        domain.KindCustom,
		ExerciseIDs: []string{"plank", "vanished", "cat-cow"},
	}
	uc := newInteractor(store, fakeCatalog{known: map[string]bool{"plank": true, "cat-cow": true}})

	out, err := uc.ResolveExercises(context.Background(), "rt-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(out.Exercises) != 2 {
		t.Fatalf("stale id must be skipped, got %d exercises", len(out.Exercises))
	}
	// Two 60s holds plus one 10s gap: 130s rounds up to 3 minutes.
	if out.EstimateMinutes != 3 {
		t.Fatalf("expected 3 minute estimate, got %d", out.EstimateMinutes)
	}

	if _, err := uc.ResolveExercises(context.Background(), "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown routine must propagate not found, got %v", err)
	}
}
