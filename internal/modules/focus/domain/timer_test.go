package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  int
	}{
		{"25", 25},
		{" 40 ", 40},
		{"", DefaultMinutes},
		{"abc", DefaultMinutes},
		{"2.5", DefaultMinutes},
		{"0", MinMinutes},
		{"-3", MinMinutes},
		{"181", MaxMinutes},
		{"999999", MaxMinutes},
	}
	for _, tt := range tests {
		require.Equalf(t, tt.want, ParseMinutes(tt.input), "input %q", tt.input)
	}
}

func TestStartAndRunToCompletion(t *testing.T) {
	t.Parallel()
	var timer Timer
	timer.Start("25")
	require.True(t, timer.Running)
	require.Equal(t, 1500, timer.RemainingSeconds)

	completed := 0
	for i := 0; i < 1500; i++ {
		if timer.Tick() {
			completed++
		}
	}
	require.Equal(t, 1, completed)
	require.False(t, timer.Running)
	require.Equal(t, 0, timer.RemainingSeconds)
	require.True(t, timer.Done())
	require.Equal(t, 1.0, timer.Fraction())

	require.False(t, timer.Tick())
	require.Equal(t, 0, timer.RemainingSeconds)
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	t.Parallel()
	var timer Timer
	timer.Start("10")
	timer.Tick()
	timer.Start("50")
	require.Equal(t, 599, timer.RemainingSeconds)
	require.Equal(t, 600, timer.DurationSeconds)
}

func TestPauseKeepsRemaining(t *testing.T) {
	t.Parallel()
	var timer Timer
	timer.Start("1")
	timer.Tick()
	timer.Tick()
	timer.Pause()
	require.False(t, timer.Running)
	require.Equal(t, 58, timer.RemainingSeconds)
	require.False(t, timer.Tick())
	require.Equal(t, 58, timer.RemainingSeconds)
	require.Equal(t, 2, timer.Elapsed())
}

func TestResetWhileRunning(t *testing.T) {
	t.Parallel()
	var timer Timer
	timer.Start("25")
	for i := 0; i < 10; i++ {
		timer.Tick()
	}
	timer.Reset("5")
	require.False(t, timer.Running)
	require.Equal(t, 300, timer.RemainingSeconds)
	require.Equal(t, 300, timer.DurationSeconds)
	require.False(t, timer.Done())
}

func TestClock(t *testing.T) {
	t.Parallel()
	timer := New("25")
	require.Equal(t, "25:00", timer.Clock())
	require.Equal(t, "01:05", FormatSeconds(65))
	require.Equal(t, "00:00", FormatSeconds(-4))
	require.Equal(t, "180:00", FormatSeconds(180*60))
}
