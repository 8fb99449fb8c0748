package out

import (
	"context"
	"sync"

	"studylog/internal/modules/session/domain"
	sessionout "studylog/internal/modules/session/port/out"
	apperrors "studylog/internal/platform/errors"
)

// MemorySessionStore keeps sessions in insertion order for the lifetime of
// the process.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions []domain.Session
}

func NewMemorySessionStore() sessionout.SessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Append(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, session)
	return nil
}

func (s *MemorySessionStore) Replace(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(session.ID)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	s.sessions[idx] = session
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = nil
	return nil
}

func (s *MemorySessionStore) Find(_ context.Context, id string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Session{}, apperrors.ErrNotFound
	}
	return s.sessions[idx], nil
}

func (s *MemorySessionStore) All(_ context.Context) ([]domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Session, len(s.sessions))
	copy(out, s.sessions)
	return out, nil
}

func (s *MemorySessionStore) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, session := range s.sessions {
		if session.ID == id {
			return i
		}
	}
	return -1
}
