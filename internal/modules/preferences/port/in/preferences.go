package in

import (
	"context"

	"studylog/internal/modules/preferences/dto"
)

type Usecase interface {
	// Load never fails: unreadable keys fall back to their defaults.
	Load(ctx context.Context) dto.PreferencesOutput
	SetWeeklyGoal(ctx context.Context, minutes int) error
	SetLoggedIn(ctx context.Context, loggedIn bool) error
	SetEmail(ctx context.Context, email string) error
	SetPasswordHash(ctx context.Context, hash string) error
}
