package service

import (
	"context"
	"fmt"
	"strings"

	"studylog/internal/modules/tips/domain"
	tipsout "studylog/internal/modules/tips/port/out"
	"studylog/internal/platform/slug"
)

type TipService struct {
	catalog tipsout.Catalog
}

func NewTipService(catalog tipsout.Catalog) *TipService {
	return &TipService{catalog: catalog}
}

func (s *TipService) List(ctx context.Context, category string) ([]domain.Tip, error) {
	tips, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tips: %w", err)
	}
	if strings.TrimSpace(category) == "" {
		return tips, nil
	}
	key := slug.Make(category, "")
	filtered := make([]domain.Tip, 0, len(tips))
	for _, tip := range tips {
		if tip.Category == key {
			filtered = append(filtered, tip)
		}
	}
	return filtered, nil
}

func (s *TipService) Categories(ctx context.Context) ([]string, error) {
	tips, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tips: %w", err)
	}
	return domain.Categories(tips), nil
}
