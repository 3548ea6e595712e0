package domain_test

import (
	"errors"
	"strings"
	"testing"

	"limber/internal/modules/catalog/domain"
	apperrors "limber/internal/platform/errors"
)

func validExercise() domain.Exercise {
	return domain.Exercise{
		ID:            "plank",
		Name:          "Plank",
		Description:   "Hold a straight line from head to heels.",
		Category:      domain.CategoryStrength,
		Mode:          domain.ModeDuration,
		TargetSeconds: 30,
		Sets:          1,
	}
}

func TestExerciseValidateChecksInOrder(t *testing.T) {
	t.Parallel()

	e := validExercise()
	e.Name = "  "
	e.Description = ""
	err := e.Validate()
	if !errors.Is(err, apperrors.ErrInvalidInput) || !strings.Contains(err.Error(), "name") {
		t.Fatalf("expected name error first, got %v", err)
	}

	e = validExercise()
	e.Description = ""
	e.Category = "cardio"
	if err := e.Validate(); err == nil || !strings.Contains(err.Error(), "description") {
		t.Fatalf("expected description error before category, got %v", err)
	}

	e = validExercise()
	e.Category = "cardio"
	if err := e.Validate(); err == nil || !strings.Contains(err.Error(), "cardio") {
		t.Fatalf("expected category error, got %v", err)
	}
}

func TestExerciseValidateRequiresExactlyOneTarget(t *testing.T) {
	t.Parallel()

	e := validExercise()
	e.TargetReps = 10
	e.TargetSeconds = 30
	if err := e.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("both targets set must fail, got %v", err)
	}

	e = validExercise()
	e.TargetReps = 0
	e.TargetSeconds = 0
	if err := e.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("neither target set must fail, got %v", err)
	}

	e = validExercise()
	if err := e.Validate(); err != nil {
		t.Fatalf("duration-only exercise must validate, got %v", err)
	}

	e = validExercise()
	e.Mode = domain.ModeReps
	e.TargetSeconds = 0
	e.TargetReps = 12
	if err := e.Validate(); err != nil {
		t.Fatalf("reps-only exercise must validate, got %v", err)
	}
}

func TestExerciseValidateTargetMustMatchMode(t *testing.T) {
	t.Parallel()

	e := validExercise()
	e.Mode = domain.ModeReps
	if err := e.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("rep based exercise with only a seconds target must fail, got %v", err)
	}

	e = validExercise()
	e.Mode = domain.ModeDuration
	e.TargetSeconds = 0
	e.TargetReps = 12
	if err := e.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("duration based exercise with only a rep target must fail, got %v", err)
	}

	e = validExercise()
	e.Mode = "distance"
	if err := e.Validate(); err == nil || !strings.Contains(err.Error(), "distance") {
		t.Fatalf("unknown mode must fail, got %v", err)
	}
}
