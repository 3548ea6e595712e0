package domain

import (
	"sort"
	"time"

	"limber/internal/platform/dates"
)

// SessionRecord is the slice of a logged session that statistics care about.
type SessionRecord struct {
	StartedAt time.Time
	Completed bool
}

type Statistics struct {
	TotalSessions     int
	CompletedSessions int
	CurrentStreak     int
	LongestStreak     int
	CompletionRate    float64
	LastSessionDate   time.Time
}

// Compute derives streaks and completion rate from the session history.
// Streaks count distinct local calendar days with at least one completed
// session; the current streak only counts if its most recent day is today
// or yesterday, so an in-progress day does not break it. LastSessionDate is
// the most recent completed session, zero when nothing has been completed.
func Compute(records []SessionRecord, today time.Time) Statistics {
	stats := Statistics{TotalSessions: len(records)}
	for _, record := range records {
		if !record.Completed {
			continue
		}
		stats.CompletedSessions++
		if record.StartedAt.After(stats.LastSessionDate) {
			stats.LastSessionDate = record.StartedAt
		}
	}
	if stats.TotalSessions > 0 {
		stats.CompletionRate = float64(stats.CompletedSessions) / float64(stats.TotalSessions)
	}

	days := completedDays(records)
	if len(days) == 0 {
		return stats
	}

	todayDay := dates.DayOf(today)
	yesterday := dates.PrevDay(todayDay)
	anchored := days[0].Equal(todayDay) || days[0].Equal(yesterday)

	run := 1
	longest := 1
	current := 0
	if anchored {
		current = 1
	}
	for i := 1; i < len(days); i++ {
		if days[i].Equal(dates.PrevDay(days[i-1])) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		if anchored && run == i+1 {
			current = run
		}
	}
	stats.CurrentStreak = current
	stats.LongestStreak = longest
	return stats
}

// completedDays returns the distinct local days with a completed session,
// most recent first.
func completedDays(records []SessionRecord) []time.Time {
	seen := make(map[string]time.Time)
	for _, record := range records {
		if !record.Completed {
			continue
		}
		day := dates.DayOf(record.StartedAt)
		seen[dates.ISO(day)] = day
	}
	days := make([]time.Time, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}
