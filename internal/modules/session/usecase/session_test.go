package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sessionout "studylog/internal/modules/session/adapter/out"
	sessiondto "studylog/internal/modules/session/dto"
	sessionin "studylog/internal/modules/session/port/in"
	"studylog/internal/modules/session/service"
	"studylog/internal/modules/session/usecase"
	apperrors "studylog/internal/platform/errors"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("sess-%d", s.n)
}

var day0 = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newUsecase() sessionin.Usecase {
	clk := &fakeClock{values: []time.Time{time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)}}
	svc := service.NewSessionService(clk, &seqID{}, sessionout.NewMemorySessionStore())
	return usecase.NewInteractor(svc)
}

func TestAddValidSessionTrimsFieldsAndGrowsStore(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()

	out, err := uc.Add(ctx, sessiondto.AddInput{Subject: "  Math ", Minutes: 30, Topics: "algebra\n\n geometry \n", Date: day0.Add(9 * time.Hour)})
	if err != nil {
		t.Fatalf("add session: %v", err)
	}
	if out.Subject != "Math" || out.Minutes != 30 {
		t.Fatalf("expected trimmed Math/30, got %q/%d", out.Subject, out.Minutes)
	}
	if len(out.TopicList) != 2 || out.TopicList[0] != "algebra" || out.TopicList[1] != "geometry" {
		t.Fatalf("expected blank topic lines filtered, got %#v", out.TopicList)
	}
	if !out.Date.Equal(day0) {
		t.Fatalf("expected date normalized to start of day, got %s", out.Date)
	}
	all, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 session, got %d", len(all))
	}
}

func TestAddRejectsInvalidInputWithoutMutation(t *testing.T) {
	t.Parallel()
	cases := []sessiondto.AddInput{
		{Subject: "", Minutes: 10},
		{Subject: "   ", Minutes: 10},
		{Subject: "Math", Minutes: 0},
		{Subject: "Math", Minutes: -5},
	}
	for _, input := range cases {
		uc := newUsecase()
		if _, err := uc.Add(context.Background(), sessiondto.AddInput{Subject: "Seed", Minutes: 5}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := uc.Add(context.Background(), input)
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", input, err)
		}
		all, _ := uc.List(context.Background())
		if len(all) != 1 {
			t.Fatalf("expected store unchanged for %+v, got %d sessions", input, len(all))
		}
	}
}

func TestAddWithoutDateUsesToday(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	out, err := uc.Add(context.Background(), sessiondto.AddInput{Subject: "History", Minutes: 15})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !out.Date.Equal(day0) {
		t.Fatalf("expected today's start of day, got %s", out.Date)
	}
}

func TestListOrderingInsertionAndRecent(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()
	for _, subject := range []string{"A", "B", "C"} {
		if _, err := uc.Add(ctx, sessiondto.AddInput{Subject: subject, Minutes: 10, Date: day0}); err != nil {
			t.Fatalf("add %s: %v", subject, err)
		}
	}
	all, _ := uc.List(ctx)
	recent, _ := uc.ListRecent(ctx)
	if all[0].Subject != "A" || all[2].Subject != "C" {
		t.Fatalf("expected insertion order A..C, got %s..%s", all[0].Subject, all[2].Subject)
	}
	if recent[0].Subject != "C" || recent[2].Subject != "A" {
		t.Fatalf("expected most recent first C..A, got %s..%s", recent[0].Subject, recent[2].Subject)
	}
}

func TestUpdateReplacesRecordAndKeepsPosition(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()
	first, _ := uc.Add(ctx, sessiondto.AddInput{Subject: "Math", Minutes: 30, Date: day0})
	_, _ = uc.Add(ctx, sessiondto.AddInput{Subject: "Physics", Minutes: 20, Date: day0})

	updated, err := uc.Update(ctx, sessiondto.UpdateInput{ID: first.ID, Subject: " Chemistry ", Minutes: 45, Topics: "bonds"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Subject != "Chemistry" || updated.Minutes != 45 {
		t.Fatalf("expected replaced fields, got %+v", updated)
	}
	if !updated.Date.Equal(first.Date) {
		t.Fatalf("expected date preserved when empty, got %s", updated.Date)
	}
	all, _ := uc.List(ctx)
	if all[0].ID != first.ID || all[0].Subject != "Chemistry" || all[1].Subject != "Physics" {
		t.Fatalf("expected in-place replacement, got %+v", all)
	}

	if _, err := uc.Update(ctx, sessiondto.UpdateInput{ID: first.ID, Subject: "", Minutes: 45}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input on blank subject, got %v", err)
	}
	again, _ := uc.Get(ctx, first.ID)
	if again.Subject != "Chemistry" {
		t.Fatalf("rejected update must not mutate, got %q", again.Subject)
	}
}

func TestRemoveDeletesExactlyThatRecord(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()
	a, _ := uc.Add(ctx, sessiondto.AddInput{Subject: "Math", Minutes: 30, Date: day0})
	b, _ := uc.Add(ctx, sessiondto.AddInput{Subject: "Math", Minutes: 30, Date: day0})
	c, _ := uc.Add(ctx, sessiondto.AddInput{Subject: "Art", Minutes: 5, Date: day0})

	if err := uc.Remove(ctx, b.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	all, _ := uc.List(ctx)
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != c.ID {
		t.Fatalf("expected only %s removed, got %+v", b.ID, all)
	}
}
