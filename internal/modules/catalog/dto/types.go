package dto

type ExerciseOutput struct {
	ID            string
	Name          string
	Category      string
	Mode          string
	TargetReps    int
	TargetSeconds int
	Sets          int
	RestSeconds   int
}

type ExerciseDetailOutput struct {
	ExerciseOutput
	Description       string
	Muscles           []string
	Steps             []string
	FormCues          []string
	Contraindications []string
	Easier            string
	Harder            string
	Image             string
}
