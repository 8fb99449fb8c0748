package in

import (
	"context"

	"studylog/internal/modules/tips/dto"
)

type Usecase interface {
	// List returns every tip, or only those in category when it is not empty.
	List(ctx context.Context, category string) ([]dto.TipOutput, error)
	Categories(ctx context.Context) ([]string, error)
}
