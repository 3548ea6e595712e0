package usecase

import (
	"context"
	"errors"
	"strings"

	catalogdto "limber/internal/modules/catalog/dto"
	catalogin "limber/internal/modules/catalog/port/in"
	"limber/internal/modules/routine/domain"
	"limber/internal/modules/routine/dto"
	routinein "limber/internal/modules/routine/port/in"
	"limber/internal/modules/routine/service"
	apperrors "limber/internal/platform/errors"
)

type Interactor struct {
	svc     *service.RoutineService
	catalog catalogin.Usecase
}

func NewInteractor(svc *service.RoutineService, catalog catalogin.Usecase) routinein.Usecase {
	return &Interactor{svc: svc, catalog: catalog}
}

func (i *Interactor) ListRoutines(ctx context.Context) ([]dto.RoutineOutput, error) {
	routines, err := i.svc.ListRoutines(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoutineOutput, 0, len(routines))
	for _, routine := range routines {
		out = append(out, toOutput(routine))
	}
	return out, nil
}

func (i *Interactor) GetRoutine(ctx context.Context, routineID string) (dto.RoutineDetailOutput, error) {
	routine, err := i.svc.GetRoutine(ctx, routineID)
	if err != nil {
		return dto.RoutineDetailOutput{}, err
	}
	exercises, err := i.materialize(ctx, routine.ExerciseIDs)
	if err != nil {
		return dto.RoutineDetailOutput{}, err
	}
	return dto.RoutineDetailOutput{
		RoutineOutput:   toOutput(routine),
		Exercises:       exercises,
		EstimateMinutes: domain.EstimateDurationMinutes(toPlanItems(exercises)),
	}, nil
}

// ResolveExercises expands a routine into concrete catalog entries. Stale ids
// are skipped rather than failing the whole resolution, so a routine keeps
// working after catalog entries disappear.
func (i *Interactor) ResolveExercises(ctx context.Context, routineID string) (dto.ResolveOutput, error) {
	routine, err := i.svc.GetRoutine(ctx, routineID)
	if err != nil {
		return dto.ResolveOutput{}, err
	}
	exercises, err := i.materialize(ctx, routine.ExerciseIDs)
	if err != nil {
		return dto.ResolveOutput{}, err
	}
	return dto.ResolveOutput{
		Routine:         toOutput(routine),
		Exercises:       exercises,
		EstimateMinutes: domain.EstimateDurationMinutes(toPlanItems(exercises)),
	}, nil
}

func (i *Interactor) CreateRoutine(ctx context.Context, input dto.CreateInput) (dto.RoutineOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return dto.RoutineOutput{}, apperrors.Invalid("routine name is required")
	}
	if len(input.ExerciseIDs) == 0 {
		return dto.RoutineOutput{}, apperrors.Invalid("routine needs at least one exercise")
	}
	for _, exerciseID := range input.ExerciseIDs {
		if _, err := i.catalog.GetExercise(ctx, exerciseID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return dto.RoutineOutput{}, apperrors.Invalid("unknown exercise id %q", exerciseID)
			}
			return dto.RoutineOutput{}, err
		}
	}
	routine, err := i.svc.Create(ctx, name, input.ExerciseIDs)
	if err != nil {
		return dto.RoutineOutput{}, err
	}
	return toOutput(routine), nil
}

func (i *Interactor) DeleteRoutine(ctx context.Context, routineID string) error {
	return i.svc.Delete(ctx, routineID)
}

func (i *Interactor) EnsureDefaults(ctx context.Context) error {
	return i.svc.EnsureDefaults(ctx)
}

func (i *Interactor) materialize(ctx context.Context, exerciseIDs []string) ([]catalogdto.ExerciseOutput, error) {
	out := make([]catalogdto.ExerciseOutput, 0, len(exerciseIDs))
	for _, exerciseID := range exerciseIDs {
		detail, err := i.catalog.GetExercise(ctx, exerciseID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, detail.ExerciseOutput)
	}
	return out, nil
}

func toOutput(r domain.Routine) dto.RoutineOutput {
	return dto.RoutineOutput{
		ID:            r.ID,
		Name:          r.Name,
		Kind:          string(r.Kind),
		ExerciseIDs:   r.ExerciseIDs,
		ExerciseCount: len(r.ExerciseIDs),
		CreatedAt:     r.CreatedAt,
	}
}

func toPlanItems(exercises []catalogdto.ExerciseOutput) []domain.PlanItem {
	items := make([]domain.PlanItem, 0, len(exercises))
	for _, e := range exercises {
		items = append(items, domain.PlanItem{
			Mode:          domain.PlanMode(e.Mode),
			TargetReps:    e.TargetReps,
			TargetSeconds: e.TargetSeconds,
		})
	}
	return items
}
