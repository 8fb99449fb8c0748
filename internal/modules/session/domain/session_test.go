package domain

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	ts := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{name: "valid", session: Session{Subject: "Math", Minutes: 1, Timestamp: ts}},
		{name: "blank subject", session: Session{Subject: " \t", Minutes: 1, Timestamp: ts}, wantErr: true},
		{name: "zero minutes", session: Session{Subject: "Math", Minutes: 0, Timestamp: ts}, wantErr: true},
		{name: "zero timestamp", session: Session{Subject: "Math", Minutes: 3}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitTopicsDropsBlankLines(t *testing.T) {
	t.Parallel()
	got := SplitTopics("  algebra\n\n\t\ngeometry  \r\n")
	if len(got) != 2 || got[0] != "algebra" || got[1] != "geometry" {
		t.Fatalf("unexpected topics %#v", got)
	}
	if len(SplitTopics("")) != 0 {
		t.Fatalf("expected no topics for empty input")
	}
}
