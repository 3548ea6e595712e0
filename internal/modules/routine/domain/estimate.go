package domain

// Advisory duration model used for UI hints. It deliberately ignores the
// per-exercise sets/rest fields and uses a flat per-rep time plus a fixed
// inter-exercise rest.
const (
	secondsPerRep        = 3
	interExerciseRestSec = 10
)

type PlanMode string

const (
	PlanModeReps     PlanMode = "reps"
	PlanModeDuration PlanMode = "duration"
)

// PlanItem is the slice of an exercise the estimator needs.
type PlanItem struct {
	Mode          PlanMode
	TargetReps    int
	TargetSeconds int
}

// EstimateDurationMinutes sums expected work seconds for every item, adds
// inter-exercise rest, and converts to minutes rounding up: 61 seconds of
// total work reports 2 minutes, not 1.
func EstimateDurationMinutes(items []PlanItem) int {
	total := 0
	for _, item := range items {
		if item.Mode == PlanModeDuration {
			total += item.TargetSeconds
		} else {
			total += item.TargetReps * secondsPerRep
		}
	}
	if n := len(items); n > 1 {
		total += interExerciseRestSec * (n - 1)
	}
	return (total + 59) / 60
}
