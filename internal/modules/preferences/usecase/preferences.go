package usecase

import (
	"context"

	preferencesdto "studylog/internal/modules/preferences/dto"
	preferencesin "studylog/internal/modules/preferences/port/in"
	"studylog/internal/modules/preferences/service"
)

type Interactor struct {
	svc *service.PreferenceService
}

func NewInteractor(svc *service.PreferenceService) preferencesin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) preferencesdto.PreferencesOutput {
	prefs := i.svc.Load(ctx)
	return preferencesdto.PreferencesOutput{
		LoggedIn:     prefs.LoggedIn,
		Email:        prefs.Email,
		WeeklyGoal:   prefs.WeeklyGoal,
		PasswordHash: prefs.PasswordHash,
	}
}

func (i *Interactor) SetWeeklyGoal(ctx context.Context, minutes int) error {
	return i.svc.SetWeeklyGoal(ctx, minutes)
}

func (i *Interactor) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	return i.svc.SetLoggedIn(ctx, loggedIn)
}

func (i *Interactor) SetEmail(ctx context.Context, email string) error {
	return i.svc.SetEmail(ctx, email)
}

func (i *Interactor) SetPasswordHash(ctx context.Context, hash string) error {
	return i.svc.SetPasswordHash(ctx, hash)
}
