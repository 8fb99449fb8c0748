package domain

import (
	"errors"
	"strings"
)

type Tip struct {
	Title    string
	Category string
	Body     string
}

func (t Tip) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("tip title is required")
	}
	if strings.TrimSpace(t.Body) == "" {
		return errors.New("tip body is required")
	}
	return nil
}

// Categories returns distinct categories in first-appearance order.
func Categories(tips []Tip) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, tip := range tips {
		if _, ok := seen[tip.Category]; ok {
			continue
		}
		seen[tip.Category] = struct{}{}
		out = append(out, tip.Category)
	}
	return out
}
