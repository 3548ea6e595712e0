package dto

import "time"

type StatisticsOutput struct {
	TotalSessions     int
	CompletedSessions int
	CurrentStreak     int
	LongestStreak     int
	CompletionRate    float64
	LastSessionDate   time.Time
}
