package dates

import "time"

const isoDay = "2006-01-02"

// DayOf truncates a timestamp to midnight of its calendar day, keeping the
// location so day arithmetic stays correct across DST changes.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// PrevDay returns the calendar day immediately before d.
func PrevDay(d time.Time) time.Time {
	return DayOf(d.AddDate(0, 0, -1))
}

// ISO renders a timestamp's calendar day as YYYY-MM-DD.
func ISO(t time.Time) string {
	return t.Format(isoDay)
}

// ParseISO parses a YYYY-MM-DD day string in the local zone.
func ParseISO(s string) (time.Time, error) {
	return time.ParseInLocation(isoDay, s, time.Local)
}
