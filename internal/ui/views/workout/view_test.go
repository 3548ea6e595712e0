package workout

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	catalogdto "limber/internal/modules/catalog/dto"
	workoutdto "limber/internal/modules/workout/dto"
)

type fakePort struct{}

func (fakePort) Start(context.Context, workoutdto.StartInput) (workoutdto.StartOutput, error) {
	return workoutdto.StartOutput{}, nil
}

func (fakePort) RecordCompletion(context.Context, workoutdto.CompletionInput) (workoutdto.SessionOutput, error) {
	return workoutdto.SessionOutput{}, nil
}

func (fakePort) Finish(context.Context, string) (workoutdto.SessionOutput, error) {
	return workoutdto.SessionOutput{}, nil
}

func startedModel(t *testing.T, playlist ...catalogdto.ExerciseOutput) Model {
	t.Helper()
	m := New(fakePort{})
	m, _ = m.Update(StartedMsg{Out: workoutdto.StartOutput{
		SessionID: "sess-1",
		Playlist:  playlist,
	}})
	if m.phase != phaseRunning {
		t.Fatalf("expected running phase after start, got %d", m.phase)
	}
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTimerOnlyRunsForDurationExercises(t *testing.T) {
	t.Parallel()
	m := New(fakePort{})
	m, cmd := m.Update(StartedMsg{Out: workoutdto.StartOutput{
		SessionID: "sess-1",
		Playlist: []catalogdto.ExerciseOutput{
			{ID: "cat-cow", Name: "Cat-Cow", Mode: "reps", TargetReps: 10},
		},
	}})
	if cmd != nil {
		t.Fatalf("rep based exercise must not arm the timer")
	}
	m, _ = m.Update(tickMsg{gen: m.gen})
	if m.elapsed != 0 {
		t.Fatalf("rep based exercise must not count seconds, got %d", m.elapsed)
	}
}

func TestTimerCountsDurationHold(t *testing.T) {
	t.Parallel()
	m := startedModel(t, catalogdto.ExerciseOutput{
		ID: "plank", Name: "Plank", Mode: "duration", TargetSeconds: 30,
	})

	m, cmd := m.Update(tickMsg{gen: m.gen})
	if m.elapsed != 1 {
		t.Fatalf("expected one counted second, got %d", m.elapsed)
	}
	if cmd == nil {
		t.Fatalf("duration hold must re-arm the timer")
	}
}

func TestAdvancingToRepExerciseStopsTimer(t *testing.T) {
	t.Parallel()
	m := startedModel(t,
		catalogdto.ExerciseOutput{ID: "plank", Name: "Plank", Mode: "duration", TargetSeconds: 30},
		catalogdto.ExerciseOutput{ID: "cat-cow", Name: "Cat-Cow", Mode: "reps", TargetReps: 10},
	)

	m, _ = m.Update(tickMsg{gen: m.gen})
	staleGen := m.gen
	m, cmd := m.Update(keyRune('s'))
	if cmd != nil {
		t.Fatalf("advancing onto a rep based exercise must not arm the timer")
	}
	if m.index != 1 || m.elapsed != 0 {
		t.Fatalf("advance must move on and reset elapsed, got index=%d elapsed=%d", m.index, m.elapsed)
	}

	// A tick armed for the previous exercise arrives stale and is dropped.
	m, _ = m.Update(tickMsg{gen: staleGen})
	if m.elapsed != 0 {
		t.Fatalf("stale tick must not count against the next exercise, got %d", m.elapsed)
	}
}

func TestPauseFreezesDurationHold(t *testing.T) {
	t.Parallel()
	m := startedModel(t, catalogdto.ExerciseOutput{
		ID: "plank", Name: "Plank", Mode: "duration", TargetSeconds: 30,
	})

	m, _ = m.Update(tickMsg{gen: m.gen})
	pausedGen := m.gen
	m, _ = m.Update(keyRune(' '))
	m, _ = m.Update(tickMsg{gen: pausedGen})
	if m.elapsed != 1 {
		t.Fatalf("paused hold must not count seconds, got %d", m.elapsed)
	}

	m, cmd := m.Update(keyRune(' '))
	if cmd == nil {
		t.Fatalf("unpausing a duration hold must re-arm the timer")
	}
}
