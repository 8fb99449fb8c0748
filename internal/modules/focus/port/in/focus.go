package in

import (
	"context"

	"studylog/internal/modules/focus/dto"
)

type Usecase interface {
	// Run counts down from minutes and calls onTick after every second. It
	// returns the final state and ctx.Err() when cancelled early.
	Run(ctx context.Context, minutes string, onTick func(dto.TimerOutput)) (dto.TimerOutput, error)
}
