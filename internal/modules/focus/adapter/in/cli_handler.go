package in

import (
	"context"

	focusdto "studylog/internal/modules/focus/dto"
	focusin "studylog/internal/modules/focus/port/in"
)

type CLIHandler struct {
	usecase focusin.Usecase
}

func NewCLIHandler(usecase focusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context, minutes string, onTick func(focusdto.TimerOutput)) (focusdto.TimerOutput, error) {
	return h.usecase.Run(ctx, minutes, onTick)
}
