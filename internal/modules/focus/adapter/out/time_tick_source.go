package out

import (
	"time"

	focusout "studylog/internal/modules/focus/port/out"
)

type TimeTickSource struct{}

func NewTimeTickSource() focusout.TickSource {
	return TimeTickSource{}
}

func (TimeTickSource) Start(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}
