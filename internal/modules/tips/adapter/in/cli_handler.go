package in

import (
	"context"

	tipsdto "studylog/internal/modules/tips/dto"
	tipsin "studylog/internal/modules/tips/port/in"
)

type CLIHandler struct {
	usecase tipsin.Usecase
}

func NewCLIHandler(usecase tipsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, category string) ([]tipsdto.TipOutput, error) {
	return h.usecase.List(ctx, category)
}

func (h CLIHandler) Categories(ctx context.Context) ([]string, error) {
	return h.usecase.Categories(ctx)
}
