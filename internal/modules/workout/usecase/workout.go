package usecase

import (
	"context"

	catalogdto "limber/internal/modules/catalog/dto"
	routinein "limber/internal/modules/routine/port/in"
	settingsin "limber/internal/modules/settings/port/in"
	"limber/internal/modules/workout/domain"
	"limber/internal/modules/workout/dto"
	workoutin "limber/internal/modules/workout/port/in"
	"limber/internal/modules/workout/service"
)

type Interactor struct {
	svc      *service.WorkoutService
	routines routinein.Usecase
	settings settingsin.Usecase
}

func NewInteractor(svc *service.WorkoutService, routines routinein.Usecase, settings settingsin.Usecase) workoutin.Usecase {
	return &Interactor{svc: svc, routines: routines, settings: settings}
}

// Start resolves the routine (validating it exists), filters out exercises
// the user disabled in settings, and persists a fresh in-progress session.
// The stored session is not filtered; only the guided playlist is.
func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	resolved, err := i.routines.ResolveExercises(ctx, input.RoutineID)
	if err != nil {
		return dto.StartOutput{}, err
	}
	playlist := resolved.Exercises
	if i.settings != nil {
		current, err := i.settings.Get(ctx)
		if err != nil {
			return dto.StartOutput{}, err
		}
		playlist = withoutDisabled(playlist, current.DisabledExercises)
	}

	session, err := i.svc.Start(ctx, input.RoutineID)
	if err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{
		SessionID:       session.ID,
		RoutineID:       session.RoutineID,
		RoutineName:     resolved.Routine.Name,
		StartedAt:       session.StartedAt,
		Playlist:        playlist,
		EstimateMinutes: resolved.EstimateMinutes,
	}, nil
}

func (i *Interactor) RecordCompletion(ctx context.Context, input dto.CompletionInput) (dto.SessionOutput, error) {
	session, err := i.svc.RecordCompletion(ctx, input.SessionID, input.ExerciseID, input.ActualReps, input.ActualSeconds)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Finish(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	session, err := i.svc.Finish(ctx, sessionID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Delete(ctx context.Context, sessionID string) error {
	return i.svc.Delete(ctx, sessionID)
}

func (i *Interactor) GetSession(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	session, err := i.svc.Get(ctx, sessionID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) ListSessions(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toOutput(session))
	}
	return out, nil
}

func (i *Interactor) HasCompletedToday(ctx context.Context) (bool, error) {
	return i.svc.HasCompletedToday(ctx)
}

func withoutDisabled(playlist []catalogdto.ExerciseOutput, disabledIDs []string) []catalogdto.ExerciseOutput {
	if len(disabledIDs) == 0 {
		return playlist
	}
	disabled := make(map[string]struct{}, len(disabledIDs))
	for _, id := range disabledIDs {
		disabled[id] = struct{}{}
	}
	out := make([]catalogdto.ExerciseOutput, 0, len(playlist))
	for _, exercise := range playlist {
		if _, skip := disabled[exercise.ID]; skip {
			continue
		}
		out = append(out, exercise)
	}
	return out
}

func toOutput(s domain.SessionLog) dto.SessionOutput {
	completions := make([]dto.CompletionOutput, 0, len(s.Completions))
	for _, c := range s.Completions {
		completions = append(completions, dto.CompletionOutput{
			ExerciseID:    c.ExerciseID,
			Completed:     c.Completed,
			ActualReps:    c.ActualReps,
			ActualSeconds: c.ActualSeconds,
		})
	}
	return dto.SessionOutput{
		SessionID:       s.ID,
		RoutineID:       s.RoutineID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		Completed:       s.Completed,
		DurationMinutes: s.DurationMinutes(),
		Completions:     completions,
	}
}
