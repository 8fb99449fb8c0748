package in

import (
	"context"

	"studylog/internal/modules/session/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.SessionOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.SessionOutput, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Get(ctx context.Context, id string) (dto.SessionOutput, error)
	// List returns sessions in insertion order.
	List(ctx context.Context) ([]dto.SessionOutput, error)
	// ListRecent returns sessions most recent first.
	ListRecent(ctx context.Context) ([]dto.SessionOutput, error)
}
