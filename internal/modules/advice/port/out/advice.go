package out

import "context"

// AdviceSource returns the advice text, nil when the payload carried none.
type AdviceSource interface {
	Fetch(ctx context.Context) (*string, error)
}
