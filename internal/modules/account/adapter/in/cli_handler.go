package in

import (
	"context"

	accountdto "studylog/internal/modules/account/dto"
	accountin "studylog/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Signup(ctx context.Context, email, password, confirm string) (accountdto.StatusOutput, error) {
	return h.usecase.Signup(ctx, accountdto.SignupInput{Email: email, Password: password, Confirm: confirm})
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (accountdto.StatusOutput, error) {
	return h.usecase.Login(ctx, accountdto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Status(ctx context.Context) accountdto.StatusOutput {
	return h.usecase.Status(ctx)
}
