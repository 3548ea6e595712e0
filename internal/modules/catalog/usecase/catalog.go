package usecase

import (
	"context"

	"limber/internal/modules/catalog/domain"
	"limber/internal/modules/catalog/dto"
	catalogin "limber/internal/modules/catalog/port/in"
	"limber/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListExercises(ctx context.Context) ([]dto.ExerciseOutput, error) {
	exercises, err := i.svc.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(exercises), nil
}

func (i *Interactor) ListByCategory(ctx context.Context, category string) ([]dto.ExerciseOutput, error) {
	exercises, err := i.svc.ListByCategory(ctx, domain.Category(category))
	if err != nil {
		return nil, err
	}
	return toOutputs(exercises), nil
}

func (i *Interactor) GetExercise(ctx context.Context, id string) (dto.ExerciseDetailOutput, error) {
	exercise, err := i.svc.GetExercise(ctx, id)
	if err != nil {
		return dto.ExerciseDetailOutput{}, err
	}
	return dto.ExerciseDetailOutput{
		ExerciseOutput:    toOutput(exercise),
		Description:       exercise.Description,
		Muscles:           exercise.Muscles,
		Steps:             exercise.Steps,
		FormCues:          exercise.FormCues,
		Contraindications: exercise.Contraindications,
		Easier:            exercise.Easier,
		Harder:            exercise.Harder,
		Image:             exercise.Image,
	}, nil
}

func (i *Interactor) EnsureSeeded(ctx context.Context) error {
	return i.svc.EnsureSeeded(ctx)
}

func toOutput(e domain.Exercise) dto.ExerciseOutput {
	return dto.ExerciseOutput{
		ID:            e.ID,
		Name:          e.Name,
		Category:      string(e.Category),
		Mode:          string(e.Mode),
		TargetReps:    e.TargetReps,
		TargetSeconds: e.TargetSeconds,
		Sets:          e.Sets,
		RestSeconds:   e.RestSeconds,
	}
}

func toOutputs(exercises []domain.Exercise) []dto.ExerciseOutput {
	out := make([]dto.ExerciseOutput, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, toOutput(e))
	}
	return out
}
