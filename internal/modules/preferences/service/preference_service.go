package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"studylog/internal/modules/preferences/domain"
	preferencesout "studylog/internal/modules/preferences/port/out"
	apperrors "studylog/internal/platform/errors"
)

type PreferenceService struct {
	store       preferencesout.PreferenceStore
	defaultGoal int
	logger      *slog.Logger
}

func NewPreferenceService(store preferencesout.PreferenceStore, defaultGoal int, logger *slog.Logger) *PreferenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferenceService{store: store, defaultGoal: defaultGoal, logger: logger}
}

// Load reads every flag independently. A key that cannot be read or parsed
// keeps its default.
func (s *PreferenceService) Load(ctx context.Context) domain.Preferences {
	prefs := domain.Defaults(s.defaultGoal)

	if raw, ok := s.read(ctx, domain.KeyLoggedIn); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			prefs.LoggedIn = v
		} else {
			s.logger.Warn("ignoring malformed preference", "key", domain.KeyLoggedIn, "value", raw)
		}
	}
	if raw, ok := s.read(ctx, domain.KeyEmail); ok {
		prefs.Email = raw
	}
	if raw, ok := s.read(ctx, domain.KeyWeeklyGoal); ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			prefs.WeeklyGoal = v
		} else {
			s.logger.Warn("ignoring malformed preference", "key", domain.KeyWeeklyGoal, "value", raw)
		}
	}
	if raw, ok := s.read(ctx, domain.KeyPasswordHash); ok {
		prefs.PasswordHash = raw
	}
	return prefs
}

func (s *PreferenceService) SetWeeklyGoal(ctx context.Context, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: weekly goal must be positive, got %d", apperrors.ErrInvalidInput, minutes)
	}
	return s.store.Set(ctx, domain.KeyWeeklyGoal, strconv.Itoa(minutes))
}

func (s *PreferenceService) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	return s.store.Set(ctx, domain.KeyLoggedIn, strconv.FormatBool(loggedIn))
}

func (s *PreferenceService) SetEmail(ctx context.Context, email string) error {
	return s.store.Set(ctx, domain.KeyEmail, strings.TrimSpace(email))
}

func (s *PreferenceService) SetPasswordHash(ctx context.Context, hash string) error {
	return s.store.Set(ctx, domain.KeyPasswordHash, hash)
}

func (s *PreferenceService) read(ctx context.Context, key string) (string, bool) {
	if s.store == nil {
		return "", false
	}
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("preference read failed, using default", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}
