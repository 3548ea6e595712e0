package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local time. Streaks and "completed today" checks work
// over local calendar days, so the zone must be the user's.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
