package in

import (
	"context"

	"studylog/internal/modules/account/dto"
)

// Usecase is a local gate in front of the app, not a security boundary.
type Usecase interface {
	Signup(ctx context.Context, input dto.SignupInput) (dto.StatusOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.StatusOutput, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) dto.StatusOutput
}
