package service

import (
	"context"

	"limber/internal/modules/workout/domain"
	workoutout "limber/internal/modules/workout/port/out"
	"limber/internal/platform/clock"
	"limber/internal/platform/dates"
	"limber/internal/platform/id"
)

type WorkoutService struct {
	clock clock.Clock
	idGen id.Generator
	store workoutout.SessionStore
}

func NewWorkoutService(clock clock.Clock, idGen id.Generator, store workoutout.SessionStore) *WorkoutService {
	return &WorkoutService{clock: clock, idGen: idGen, store: store}
}

func (s *WorkoutService) Start(ctx context.Context, routineID string) (domain.SessionLog, error) {
	session := domain.SessionLog{
		ID:        s.idGen.New(),
		RoutineID: routineID,
		StartedAt: s.clock.Now(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.SessionLog{}, err
	}
	return session, nil
}

func (s *WorkoutService) RecordCompletion(ctx context.Context, sessionID, exerciseID string, actualReps, actualSeconds int) (domain.SessionLog, error) {
	session, err := s.store.GetByID(ctx, sessionID)
	if err != nil {
		return domain.SessionLog{}, err
	}
	session.RecordCompletion(exerciseID, actualReps, actualSeconds)
	if err := s.store.Update(ctx, session); err != nil {
		return domain.SessionLog{}, err
	}
	return session, nil
}

func (s *WorkoutService) Finish(ctx context.Context, sessionID string) (domain.SessionLog, error) {
	session, err := s.store.GetByID(ctx, sessionID)
	if err != nil {
		return domain.SessionLog{}, err
	}
	if session.Completed {
		return session, nil
	}
	session.Finish(s.clock.Now())
	if err := s.store.Update(ctx, session); err != nil {
		return domain.SessionLog{}, err
	}
	return session, nil
}

func (s *WorkoutService) Delete(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *WorkoutService) Get(ctx context.Context, sessionID string) (domain.SessionLog, error) {
	return s.store.GetByID(ctx, sessionID)
}

func (s *WorkoutService) List(ctx context.Context) ([]domain.SessionLog, error) {
	return s.store.GetAll(ctx)
}

// HasCompletedToday reports whether any session started today (local calendar
// day) reached its terminal completed state.
func (s *WorkoutService) HasCompletedToday(ctx context.Context) (bool, error) {
	today := dates.ISO(s.clock.Now())
	sessions, err := s.store.GetByDate(ctx, today)
	if err != nil {
		return false, err
	}
	for _, session := range sessions {
		if session.Completed {
			return true, nil
		}
	}
	return false, nil
}
