package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studylog/internal/modules/session/domain"
	sessionout "studylog/internal/modules/session/port/out"
	"studylog/internal/platform/clock"
	apperrors "studylog/internal/platform/errors"
	"studylog/internal/platform/id"
)

type SessionService struct {
	clock clock.Clock
	idGen id.Generator
	store sessionout.SessionStore
}

func NewSessionService(clock clock.Clock, idGen id.Generator, store sessionout.SessionStore) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, store: store}
}

func (s *SessionService) Add(ctx context.Context, subject string, minutes int, topics string, date time.Time) (domain.Session, error) {
	now := s.clock.Now()
	session := domain.Session{
		ID:        s.idGen.New(),
		Subject:   strings.TrimSpace(subject),
		Minutes:   minutes,
		Topics:    strings.TrimSpace(topics),
		Timestamp: s.day(date, now),
		CreatedAt: now,
	}
	if err := session.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Append(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("append session: %w", err)
	}
	return session, nil
}

func (s *SessionService) Update(ctx context.Context, id, subject string, minutes int, topics string, date time.Time) (domain.Session, error) {
	existing, err := s.store.Find(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	updated := domain.Session{
		ID:        existing.ID,
		Subject:   strings.TrimSpace(subject),
		Minutes:   minutes,
		Topics:    strings.TrimSpace(topics),
		Timestamp: s.day(date, existing.Timestamp),
		CreatedAt: existing.CreatedAt,
	}
	if err := updated.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Replace(ctx, updated); err != nil {
		return domain.Session{}, err
	}
	return updated, nil
}

func (s *SessionService) Remove(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *SessionService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *SessionService) Get(ctx context.Context, id string) (domain.Session, error) {
	return s.store.Find(ctx, id)
}

func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// day normalizes a form date to start of day, using fallback when the form
// left it empty.
func (s *SessionService) day(date, fallback time.Time) time.Time {
	if date.IsZero() {
		date = fallback
	}
	return clock.StartOfDay(date)
}
