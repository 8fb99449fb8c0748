package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"studylog/internal/modules/focus/domain"
	"studylog/internal/platform/logging"
)

type manualTicks struct {
	ch      chan time.Time
	stopped bool
}

func newManualTicks(buffer int) *manualTicks {
	return &manualTicks{ch: make(chan time.Time, buffer)}
}

func (m *manualTicks) Start(time.Duration) (<-chan time.Time, func()) {
	return m.ch, func() { m.stopped = true }
}

func TestRunnerCompletes(t *testing.T) {
	t.Parallel()
	ticks := newManualTicks(60)
	for i := 0; i < 60; i++ {
		ticks.ch <- time.Time{}
	}
	runner := NewRunner(ticks, logging.Discard())

	seen := 0
	final, err := runner.Run(context.Background(), "1", func(domain.Timer) { seen++ })
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if final.Running || final.RemainingSeconds != 0 {
		t.Fatalf("expected finished timer, got %+v", final)
	}
	if seen != 60 {
		t.Fatalf("expected 60 tick callbacks, got %d", seen)
	}
	if !ticks.stopped {
		t.Fatalf("expected ticker stopped")
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	t.Parallel()
	ticks := newManualTicks(3)
	for i := 0; i < 3; i++ {
		ticks.ch <- time.Time{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	runner := NewRunner(ticks, logging.Discard())

	final, err := runner.Run(ctx, "25", func(timer domain.Timer) {
		if timer.Elapsed() == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if final.Running || final.RemainingSeconds != 1497 {
		t.Fatalf("expected paused timer at 1497, got %+v", final)
	}
}
