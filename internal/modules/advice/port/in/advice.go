package in

import (
	"context"

	"studylog/internal/modules/advice/dto"
)

type Usecase interface {
	// GetAdvice performs one fetch. Failures are folded into the output.
	GetAdvice(ctx context.Context) dto.AdviceOutput
}
