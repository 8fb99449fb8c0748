package usecase

import (
	"context"

	tipsdto "studylog/internal/modules/tips/dto"
	tipsin "studylog/internal/modules/tips/port/in"
	"studylog/internal/modules/tips/service"
)

type Interactor struct {
	svc *service.TipService
}

func NewInteractor(svc *service.TipService) tipsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, category string) ([]tipsdto.TipOutput, error) {
	tips, err := i.svc.List(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]tipsdto.TipOutput, 0, len(tips))
	for _, tip := range tips {
		out = append(out, tipsdto.TipOutput{Title: tip.Title, Category: tip.Category, Body: tip.Body})
	}
	return out, nil
}

func (i *Interactor) Categories(ctx context.Context) ([]string, error) {
	return i.svc.Categories(ctx)
}
