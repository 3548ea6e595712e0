package domain_test

import (
	"errors"
	"testing"
	"time"

	"limber/internal/modules/workout/domain"
	apperrors "limber/internal/platform/errors"
)

func TestRecordCompletionUpsertsLastWriteWins(t *testing.T) {
	t.Parallel()
	session := domain.SessionLog{
		ID:        "sess-1",
		RoutineID: "rt-1",
		StartedAt: time.Date(2026, 8, 28, 7, 30, 0, 0, time.Local),
	}

	session.RecordCompletion("plank", 0, 25)
	session.RecordCompletion("cat-cow", 8, 0)
	session.RecordCompletion("plank", 0, 40)

	if len(session.Completions) != 2 {
		t.Fatalf("expected 2 completions after upsert, got %d", len(session.Completions))
	}
	if session.Completions[0].ExerciseID != "plank" || session.Completions[0].ActualSeconds != 40 {
		t.Fatalf("expected plank record replaced with 40s, got %+v", session.Completions[0])
	}
	if !session.Completions[0].Completed {
		t.Fatalf("recorded completion must be marked completed")
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	t.Parallel()
	started := time.Date(2026, 8, 28, 7, 30, 0, 0, time.Local)
	session := domain.SessionLog{ID: "sess-1", RoutineID: "rt-1", StartedAt: started}

	first := started.Add(9 * time.Minute)
	session.Finish(first)
	session.Finish(started.Add(2 * time.Hour))

	if !session.Completed {
		t.Fatalf("session must be completed")
	}
	if !session.EndedAt.Equal(first) {
		t.Fatalf("second finish must not move end timestamp: got %v", session.EndedAt)
	}
}

func TestDurationMinutesRoundsToNearest(t *testing.T) {
	t.Parallel()
	started := time.Date(2026, 8, 28, 7, 30, 0, 0, time.Local)

	session := domain.SessionLog{ID: "s", RoutineID: "r", StartedAt: started}
	if got := session.DurationMinutes(); got != 0 {
		t.Fatalf("unfinished session must report 0, got %d", got)
	}

	session.Finish(started.Add(8*time.Minute + 29*time.Second))
	if got := session.DurationMinutes(); got != 8 {
		t.Fatalf("8m29s must round to 8, got %d", got)
	}

	other := domain.SessionLog{ID: "s", RoutineID: "r", StartedAt: started}
	other.Finish(started.Add(8*time.Minute + 30*time.Second))
	if got := other.DurationMinutes(); got != 9 {
		t.Fatalf("8m30s must round to 9, got %d", got)
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()
	started := time.Date(2026, 8, 28, 7, 30, 0, 0, time.Local)

	session := domain.SessionLog{ID: "s", RoutineID: "r", StartedAt: started, Completed: true}
	if err := session.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("completed session without end must fail, got %v", err)
	}

	session = domain.SessionLog{ID: "s", RoutineID: "r", StartedAt: started, EndedAt: started.Add(-time.Minute)}
	if err := session.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("end before start must fail, got %v", err)
	}

	session = domain.SessionLog{
		ID: "s", RoutineID: "r", StartedAt: started,
		Completions: []domain.ExerciseCompletion{
			{ExerciseID: "plank", Completed: true},
			{ExerciseID: "plank", Completed: true},
		},
	}
	if err := session.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("duplicate completions must fail, got %v", err)
	}
}
