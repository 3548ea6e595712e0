package dto

import (
	"time"

	catalogdto "limber/internal/modules/catalog/dto"
)

type RoutineOutput struct {
	ID            string
	Name          string
	Kind          string
	ExerciseIDs   []string
	ExerciseCount int
	CreatedAt     time.Time
}

type RoutineDetailOutput struct {
	RoutineOutput
	Exercises       []catalogdto.ExerciseOutput
	EstimateMinutes int
}

type CreateInput struct {
	Name        string
	ExerciseIDs []string
}

type ResolveOutput struct {
	Routine         RoutineOutput
	Exercises       []catalogdto.ExerciseOutput
	EstimateMinutes int
}
