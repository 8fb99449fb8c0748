package out

import (
	"context"

	"studylog/internal/modules/session/domain"
)

type SessionStore interface {
	Append(ctx context.Context, session domain.Session) error
	Replace(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Find(ctx context.Context, id string) (domain.Session, error)
	All(ctx context.Context) ([]domain.Session, error)
}
