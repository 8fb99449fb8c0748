package service

import (
	"context"
	"log/slog"
	"time"

	"studylog/internal/modules/focus/domain"
	focusout "studylog/internal/modules/focus/port/out"
)

type Runner struct {
	ticks    focusout.TickSource
	interval time.Duration
	logger   *slog.Logger
}

func NewRunner(ticks focusout.TickSource, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{ticks: ticks, interval: time.Second, logger: logger}
}

func (r *Runner) Run(ctx context.Context, input string, onTick func(domain.Timer)) (domain.Timer, error) {
	var timer domain.Timer
	timer.Start(input)
	r.logger.Info("focus started", "seconds", timer.DurationSeconds)

	ch, stop := r.ticks.Start(r.interval)
	defer stop()

	for timer.Running {
		select {
		case <-ctx.Done():
			timer.Pause()
			r.logger.Info("focus cancelled", "remaining", timer.RemainingSeconds)
			return timer, ctx.Err()
		case <-ch:
			completed := timer.Tick()
			if onTick != nil {
				onTick(timer)
			}
			if completed {
				r.logger.Info("focus completed", "seconds", timer.DurationSeconds)
			}
		}
	}
	return timer, nil
}
