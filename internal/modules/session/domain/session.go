package domain

import (
	"fmt"
	"strings"
	"time"
)

// Session is one logged block of study time.
type Session struct {
	ID        string
	Subject   string
	Minutes   int
	Topics    string
	Timestamp time.Time
	CreatedAt time.Time
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if s.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive, got %d", s.Minutes)
	}
	if s.Timestamp.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// TopicLines returns the trimmed, non-blank lines of Topics.
func (s Session) TopicLines() []string {
	return SplitTopics(s.Topics)
}

func SplitTopics(topics string) []string {
	lines := strings.Split(topics, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
