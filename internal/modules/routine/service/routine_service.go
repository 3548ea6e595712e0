package service

import (
	"context"
	"errors"
	"fmt"

	"limber/internal/modules/routine/domain"
	routineout "limber/internal/modules/routine/port/out"
	"limber/internal/platform/clock"
	apperrors "limber/internal/platform/errors"
	"limber/internal/platform/id"
)

// Seeded default routines. The id lists are disjoint subsets of the bundled
// exercise catalog.
var defaultRoutines = []struct {
	name        string
	kind        domain.Kind
	exerciseIDs []string
}{
	{
		name: "Morning Wake-Up",
		kind: domain.KindMorning,
		exerciseIDs: []string{
			"neck-rolls", "cat-cow", "shoulder-rolls",
			"glute-bridge", "bird-dog", "plank",
		},
	},
	{
		name: "Evening Wind-Down",
		kind: domain.KindEvening,
		exerciseIDs: []string{
			"standing-forward-fold", "hip-flexor-stretch", "hamstring-stretch",
			"childs-pose", "legs-up-the-wall", "box-breathing",
		},
	},
}

type RoutineService struct {
	clock clock.Clock
	idGen id.Generator
	store routineout.RoutineStore
}

func NewRoutineService(clock clock.Clock, idGen id.Generator, store routineout.RoutineStore) *RoutineService {
	return &RoutineService{clock: clock, idGen: idGen, store: store}
}

func (s *RoutineService) ListRoutines(ctx context.Context) ([]domain.Routine, error) {
	return s.store.GetAll(ctx)
}

func (s *RoutineService) GetRoutine(ctx context.Context, routineID string) (domain.Routine, error) {
	return s.store.GetByID(ctx, routineID)
}

// Create persists a new custom routine. Callers validate exercise ids against
// the catalog before reaching this point.
func (s *RoutineService) Create(ctx context.Context, name string, exerciseIDs []string) (domain.Routine, error) {
	routine := domain.Routine{
		ID:          s.idGen.New(),
		Name:        name,
		Kind:        domain.KindCustom,
		ExerciseIDs: exerciseIDs,
		CreatedAt:   s.clock.Now(),
	}
	if err := routine.Validate(); err != nil {
		return domain.Routine{}, err
	}
	if err := s.store.Save(ctx, routine); err != nil {
		return domain.Routine{}, err
	}
	return routine, nil
}

// Delete removes a custom routine. The seeded morning/evening routines are
// permanent and deleting them is forbidden.
func (s *RoutineService) Delete(ctx context.Context, routineID string) error {
	routine, err := s.store.GetByID(ctx, routineID)
	if err != nil {
		return err
	}
	if routine.Kind.Default() {
		return fmt.Errorf("%w: default routine %q cannot be deleted", apperrors.ErrForbidden, routine.Name)
	}
	return s.store.Delete(ctx, routineID)
}

// EnsureDefaults seeds the morning and evening routines once. Re-running is a
// no-op for every kind that already exists.
func (s *RoutineService) EnsureDefaults(ctx context.Context) error {
	for _, def := range defaultRoutines {
		_, err := s.store.GetByKind(ctx, def.kind)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		routine := domain.Routine{
			ID:          s.idGen.New(),
			Name:        def.name,
			Kind:        def.kind,
			ExerciseIDs: def.exerciseIDs,
			CreatedAt:   s.clock.Now(),
		}
		if err := s.store.Save(ctx, routine); err != nil {
			return err
		}
	}
	return nil
}
