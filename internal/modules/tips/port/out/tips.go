package out

import (
	"context"

	"studylog/internal/modules/tips/domain"
)

type Catalog interface {
	All(ctx context.Context) ([]domain.Tip, error)
}
