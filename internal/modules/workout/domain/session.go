package domain

import (
	"math"
	"time"

	apperrors "limber/internal/platform/errors"
)

// ExerciseCompletion is one record of an exercise attempted within a session.
// A session holds at most one completion per exercise id.
type ExerciseCompletion struct {
	ExerciseID    string
	Completed     bool
	ActualReps    int
	ActualSeconds int
}

// SessionLog is one workout attempt. It is mutable while the session runs and
// becomes an immutable history record once Completed is set; after that the
// only allowed operation is wholesale deletion.
type SessionLog struct {
	ID          string
	RoutineID   string
	StartedAt   time.Time
	EndedAt     time.Time
	Completed   bool
	Completions []ExerciseCompletion
}

// RecordCompletion upserts a completion record, last write wins. Any exercise
// id is accepted: the resolved exercise list can shrink when catalog entries
// vanish, so there is no referential check here.
func (s *SessionLog) RecordCompletion(exerciseID string, actualReps, actualSeconds int) {
	record := ExerciseCompletion{
		ExerciseID:    exerciseID,
		Completed:     true,
		ActualReps:    actualReps,
		ActualSeconds: actualSeconds,
	}
	for i, existing := range s.Completions {
		if existing.ExerciseID == exerciseID {
			s.Completions[i] = record
			return
		}
	}
	s.Completions = append(s.Completions, record)
}

// Finish moves the session to its terminal state. Finishing an already
// finished session is a no-op so retries cannot move the end timestamp.
func (s *SessionLog) Finish(now time.Time) {
	if s.Completed {
		return
	}
	s.EndedAt = now
	s.Completed = true
}

// DurationMinutes reports actual elapsed time, rounded to the nearest minute.
// An unfinished session reports 0.
func (s SessionLog) DurationMinutes() int {
	if s.EndedAt.IsZero() {
		return 0
	}
	return int(math.Round(s.EndedAt.Sub(s.StartedAt).Seconds() / 60))
}

func (s SessionLog) Validate() error {
	if s.ID == "" {
		return apperrors.Invalid("session id is required")
	}
	if s.RoutineID == "" {
		return apperrors.Invalid("session routine id is required")
	}
	if s.StartedAt.IsZero() {
		return apperrors.Invalid("session start timestamp is required")
	}
	if s.Completed && s.EndedAt.IsZero() {
		return apperrors.Invalid("completed session must have an end timestamp")
	}
	if !s.EndedAt.IsZero() && s.EndedAt.Before(s.StartedAt) {
		return apperrors.Invalid("session end precedes its start")
	}
	seen := make(map[string]struct{}, len(s.Completions))
	for _, completion := range s.Completions {
		if _, dup := seen[completion.ExerciseID]; dup {
			return apperrors.Invalid("duplicate completion for exercise %q", completion.ExerciseID)
		}
		seen[completion.ExerciseID] = struct{}{}
	}
	return nil
}
