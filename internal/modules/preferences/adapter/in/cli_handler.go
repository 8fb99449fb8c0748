package in

import (
	"context"

	preferencesdto "studylog/internal/modules/preferences/dto"
	preferencesin "studylog/internal/modules/preferences/port/in"
)

type CLIHandler struct {
	usecase preferencesin.Usecase
}

func NewCLIHandler(usecase preferencesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) preferencesdto.PreferencesOutput {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) SetWeeklyGoal(ctx context.Context, minutes int) error {
	return h.usecase.SetWeeklyGoal(ctx, minutes)
}
