package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"studylog/internal/modules/advice/domain"
	adviceout "studylog/internal/modules/advice/port/out"
	apperrors "studylog/internal/platform/errors"
)

type AdviceService struct {
	source adviceout.AdviceSource
	logger *slog.Logger
}

func NewAdviceService(source adviceout.AdviceSource, logger *slog.Logger) *AdviceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdviceService{source: source, logger: logger}
}

// Fetch asks the source once. The error, when present, wraps
// ErrAdviceUnavailable.
func (s *AdviceService) Fetch(ctx context.Context) (domain.Result, error) {
	if s.source == nil {
		return domain.Failure(), fmt.Errorf("%w: no advice source configured", apperrors.ErrAdviceUnavailable)
	}
	text, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Warn("advice fetch failed", "error", err)
		return domain.Failure(), fmt.Errorf("%w: %v", apperrors.ErrAdviceUnavailable, err)
	}
	if text == nil || strings.TrimSpace(*text) == "" {
		s.logger.Debug("advice payload carried no text")
		return domain.Empty(), nil
	}
	return domain.Success(strings.TrimSpace(*text)), nil
}
