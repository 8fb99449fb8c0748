package out

import "time"

type TickSource interface {
	// Start returns a channel delivering one value per interval and a stop func.
	Start(interval time.Duration) (<-chan time.Time, func())
}
