package usecase

import (
	"context"

	advicedto "studylog/internal/modules/advice/dto"
	advicein "studylog/internal/modules/advice/port/in"
	"studylog/internal/modules/advice/service"
)

type Interactor struct {
	svc *service.AdviceService
}

func NewInteractor(svc *service.AdviceService) advicein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetAdvice(ctx context.Context) advicedto.AdviceOutput {
	result, _ := i.svc.Fetch(ctx)
	return advicedto.AdviceOutput{Kind: string(result.Kind), Text: result.Text}
}
