package out

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"studylog/internal/modules/tips/domain"
	tipsout "studylog/internal/modules/tips/port/out"
	"studylog/internal/platform/slug"
)

//go:embed tips.yaml
var embeddedTips []byte

type tipRecord struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Body     string `yaml:"body"`
}

type EmbeddedCatalog struct {
	raw  []byte
	once sync.Once
	tips []domain.Tip
	err  error
}

func NewEmbeddedCatalog() tipsout.Catalog {
	return &EmbeddedCatalog{raw: embeddedTips}
}

// NewYAMLCatalog parses raw instead of the built-in catalog.
func NewYAMLCatalog(raw []byte) tipsout.Catalog {
	return &EmbeddedCatalog{raw: raw}
}

func (c *EmbeddedCatalog) All(_ context.Context) ([]domain.Tip, error) {
	c.once.Do(func() {
		c.tips, c.err = parse(c.raw)
	})
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.Tip, len(c.tips))
	copy(out, c.tips)
	return out, nil
}

func parse(raw []byte) ([]domain.Tip, error) {
	var records []tipRecord
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode tips catalog: %w", err)
	}
	tips := make([]domain.Tip, 0, len(records))
	for i, rec := range records {
		tip := domain.Tip{
			Title:    strings.TrimSpace(rec.Title),
			Category: slug.Make(rec.Category, "general"),
			Body:     strings.TrimSpace(rec.Body),
		}
		if err := tip.Validate(); err != nil {
			return nil, fmt.Errorf("tip %d: %w", i+1, err)
		}
		tips = append(tips, tip)
	}
	return tips, nil
}
