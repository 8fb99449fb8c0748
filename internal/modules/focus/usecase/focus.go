package usecase

import (
	"context"

	"studylog/internal/modules/focus/domain"
	focusdto "studylog/internal/modules/focus/dto"
	focusin "studylog/internal/modules/focus/port/in"
	"studylog/internal/modules/focus/service"
)

type Interactor struct {
	runner *service.Runner
}

func NewInteractor(runner *service.Runner) focusin.Usecase {
	return &Interactor{runner: runner}
}

func (i *Interactor) Run(ctx context.Context, minutes string, onTick func(focusdto.TimerOutput)) (focusdto.TimerOutput, error) {
	final, err := i.runner.Run(ctx, minutes, func(t domain.Timer) {
		if onTick != nil {
			onTick(toOutput(t))
		}
	})
	return toOutput(final), err
}

func toOutput(t domain.Timer) focusdto.TimerOutput {
	return focusdto.TimerOutput{
		DurationSeconds:  t.DurationSeconds,
		RemainingSeconds: t.RemainingSeconds,
		Running:          t.Running,
		Clock:            t.Clock(),
		Fraction:         t.Fraction(),
	}
}
