package dto

type TimerOutput struct {
	DurationSeconds  int
	RemainingSeconds int
	Running          bool
	Clock            string
	Fraction         float64
}
