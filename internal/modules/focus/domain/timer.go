package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultMinutes = 25
	MinMinutes     = 1
	MaxMinutes     = 180
)

// Timer is a countdown advanced one second per Tick.
type Timer struct {
	DurationSeconds  int
	RemainingSeconds int
	Running          bool
}

func New(input string) Timer {
	seconds := ParseMinutes(input) * 60
	return Timer{DurationSeconds: seconds, RemainingSeconds: seconds}
}

// ParseMinutes reads a whole number of minutes. Anything unparsable yields the
// default; numbers are clamped to [MinMinutes, MaxMinutes].
func ParseMinutes(input string) int {
	minutes, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return DefaultMinutes
	}
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}

// Start is a no-op while running. Otherwise the countdown is rebuilt from
// input, so a paused timer restarts rather than resumes.
func (t *Timer) Start(input string) {
	if t.Running {
		return
	}
	seconds := ParseMinutes(input) * 60
	t.DurationSeconds = seconds
	t.RemainingSeconds = seconds
	t.Running = true
}

func (t *Timer) Pause() {
	t.Running = false
}

func (t *Timer) Reset(input string) {
	seconds := ParseMinutes(input) * 60
	t.Running = false
	t.DurationSeconds = seconds
	t.RemainingSeconds = seconds
}

// Tick reports whether this tick finished the countdown.
func (t *Timer) Tick() bool {
	if !t.Running {
		return false
	}
	if t.RemainingSeconds > 0 {
		t.RemainingSeconds--
	}
	if t.RemainingSeconds == 0 {
		t.Running = false
		return true
	}
	return false
}

func (t Timer) Done() bool {
	return !t.Running && t.DurationSeconds > 0 && t.RemainingSeconds == 0
}

func (t Timer) Elapsed() int {
	return t.DurationSeconds - t.RemainingSeconds
}

func (t Timer) Fraction() float64 {
	if t.DurationSeconds <= 0 {
		return 0
	}
	return float64(t.Elapsed()) / float64(t.DurationSeconds)
}

// Clock renders remaining time as MM:SS.
func (t Timer) Clock() string {
	return FormatSeconds(t.RemainingSeconds)
}

func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	m := seconds / 60
	s := seconds % 60
	return pad(m) + ":" + pad(s)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
