package usecase

import (
	"context"

	accountdto "studylog/internal/modules/account/dto"
	accountin "studylog/internal/modules/account/port/in"
	"studylog/internal/modules/account/service"
	preferencesin "studylog/internal/modules/preferences/port/in"
)

type Interactor struct {
	svc   *service.AccountService
	prefs preferencesin.Usecase
}

func NewInteractor(svc *service.AccountService, prefs preferencesin.Usecase) accountin.Usecase {
	return &Interactor{svc: svc, prefs: prefs}
}

func (i *Interactor) Signup(ctx context.Context, input accountdto.SignupInput) (accountdto.StatusOutput, error) {
	if err := i.svc.ValidateSignup(input.Email, input.Password, input.Confirm); err != nil {
		return accountdto.StatusOutput{}, err
	}
	hash, err := i.svc.Hash(input.Password)
	if err != nil {
		return accountdto.StatusOutput{}, err
	}
	email := service.NormalizeEmail(input.Email)
	if err := i.prefs.SetEmail(ctx, email); err != nil {
		return accountdto.StatusOutput{}, err
	}
	if err := i.prefs.SetPasswordHash(ctx, hash); err != nil {
		return accountdto.StatusOutput{}, err
	}
	if err := i.prefs.SetLoggedIn(ctx, true); err != nil {
		return accountdto.StatusOutput{}, err
	}
	return i.Status(ctx), nil
}

func (i *Interactor) Login(ctx context.Context, input accountdto.LoginInput) (accountdto.StatusOutput, error) {
	prefs := i.prefs.Load(ctx)
	if err := i.svc.Verify(prefs.Email, prefs.PasswordHash, input.Email, input.Password); err != nil {
		return accountdto.StatusOutput{}, err
	}
	if err := i.prefs.SetLoggedIn(ctx, true); err != nil {
		return accountdto.StatusOutput{}, err
	}
	return i.Status(ctx), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.prefs.SetLoggedIn(ctx, false)
}

func (i *Interactor) Status(ctx context.Context) accountdto.StatusOutput {
	prefs := i.prefs.Load(ctx)
	return accountdto.StatusOutput{
		LoggedIn:   prefs.LoggedIn,
		Email:      prefs.Email,
		HasAccount: prefs.Email != "" && prefs.PasswordHash != "",
	}
}
