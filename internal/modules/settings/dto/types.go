package dto

type SettingsOutput struct {
	NotificationsEnabled bool
	MorningReminder      string
	EveningReminder      string
	SnoozeMinutes        int
	DisabledExercises    []string
}

type SetInput struct {
	Key   string
	Value string
}
