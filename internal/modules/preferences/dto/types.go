package dto

type PreferencesOutput struct {
	LoggedIn     bool
	Email        string
	WeeklyGoal   int
	PasswordHash string
}
