package dto

import (
	"time"

	catalogdto "limber/internal/modules/catalog/dto"
)

type StartInput struct {
	RoutineID string
}

type StartOutput struct {
	SessionID       string
	RoutineID       string
	RoutineName     string
	StartedAt       time.Time
	Playlist        []catalogdto.ExerciseOutput
	EstimateMinutes int
}

type CompletionInput struct {
	SessionID     string
	ExerciseID    string
	ActualReps    int
	ActualSeconds int
}

type CompletionOutput struct {
	ExerciseID    string
	Completed     bool
	ActualReps    int
	ActualSeconds int
}

type SessionOutput struct {
	SessionID       string
	RoutineID       string
	StartedAt       time.Time
	EndedAt         time.Time
	Completed       bool
	DurationMinutes int
	Completions     []CompletionOutput
}
