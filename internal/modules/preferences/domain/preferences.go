package domain

const (
	KeyLoggedIn     = "logged_in"
	KeyEmail        = "email"
	KeyWeeklyGoal   = "weekly_goal"
	KeyPasswordHash = "password_hash"

	DefaultWeeklyGoal = 300
)

// Preferences are independent scalar flags; none depends on another.
type Preferences struct {
	LoggedIn     bool
	Email        string
	WeeklyGoal   int
	PasswordHash string
}

func Defaults(weeklyGoal int) Preferences {
	if weeklyGoal <= 0 {
		weeklyGoal = DefaultWeeklyGoal
	}
	return Preferences{WeeklyGoal: weeklyGoal}
}
