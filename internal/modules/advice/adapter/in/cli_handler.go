package in

import (
	"context"

	advicedto "studylog/internal/modules/advice/dto"
	advicein "studylog/internal/modules/advice/port/in"
)

type CLIHandler struct {
	usecase advicein.Usecase
}

func NewCLIHandler(usecase advicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) advicedto.AdviceOutput {
	return h.usecase.GetAdvice(ctx)
}
