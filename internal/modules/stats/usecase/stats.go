package usecase

import (
	"context"

	"limber/internal/modules/stats/domain"
	"limber/internal/modules/stats/dto"
	statsin "limber/internal/modules/stats/port/in"
	workoutin "limber/internal/modules/workout/port/in"
	"limber/internal/platform/clock"
)

type Interactor struct {
	workouts workoutin.Usecase
	clock    clock.Clock
}

func NewInteractor(workouts workoutin.Usecase, clock clock.Clock) statsin.Usecase {
	return &Interactor{workouts: workouts, clock: clock}
}

func (i *Interactor) Overview(ctx context.Context) (dto.StatisticsOutput, error) {
	sessions, err := i.workouts.ListSessions(ctx)
	if err != nil {
		return dto.StatisticsOutput{}, err
	}
	records := make([]domain.SessionRecord, 0, len(sessions))
	for _, session := range sessions {
		records = append(records, domain.SessionRecord{
			StartedAt: session.StartedAt,
			Completed: session.Completed,
		})
	}
	stats := domain.Compute(records, i.clock.Now())
	return dto.StatisticsOutput{
		TotalSessions:     stats.TotalSessions,
		CompletedSessions: stats.CompletedSessions,
		CurrentStreak:     stats.CurrentStreak,
		LongestStreak:     stats.LongestStreak,
		CompletionRate:    stats.CompletionRate,
		LastSessionDate:   stats.LastSessionDate,
	}, nil
}
