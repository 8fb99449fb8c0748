package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"studylog/internal/platform/config"
	"studylog/internal/platform/logging"
)

func newTestConfig(t *testing.T, adviceURL string) config.Config {
	t.Helper()
	cfg := config.Default(t.TempDir())
	cfg.Advice.BaseURL = adviceURL
	cfg.Advice.TimeoutSeconds = 2
	return cfg
}

func TestEndToEndStudyLoop(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slip":{"id":7,"advice":"Keep going"}}`))
	}))
	t.Cleanup(server.Close)

	cfg := newTestConfig(t, server.URL+"/")
	ctx := context.Background()

	app, err := New(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if status := app.AccountCLI.Status(ctx); status.LoggedIn || status.HasAccount {
		t.Fatalf("fresh install must start logged out, got %+v", status)
	}
	if _, err := app.AccountCLI.Signup(ctx, "Me@Example.com", "secret1", "secret1"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	math, err := app.SessionCLI.Add(ctx, "Math", 30, "algebra\ngeometry", time.Time{})
	if err != nil {
		t.Fatalf("add math: %v", err)
	}
	if _, err := app.SessionCLI.Add(ctx, "Math", 20, "", time.Time{}); err != nil {
		t.Fatalf("add math again: %v", err)
	}
	if _, err := app.SessionCLI.Add(ctx, "History", 40, "", time.Time{}); err != nil {
		t.Fatalf("add history: %v", err)
	}
	if err := app.PreferencesCLI.SetWeeklyGoal(ctx, 60); err != nil {
		t.Fatalf("set goal: %v", err)
	}

	summary, err := app.StatsCLI.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalMinutes != 90 || summary.Last7DaysMinutes != 90 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if !summary.HasTop || summary.TopSubject != "Math" {
		t.Fatalf("expected Math on top, got %+v", summary)
	}
	if summary.Progress != 1 {
		t.Fatalf("expected progress clamped to 1, got %v", summary.Progress)
	}

	if err := app.SessionCLI.Remove(ctx, math.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if summary, _ = app.StatsCLI.Summary(ctx); summary.TotalMinutes != 60 {
		t.Fatalf("expected 60 after remove, got %d", summary.TotalMinutes)
	}

	if advice := app.AdviceCLI.Get(ctx); advice.Text != "Keep going" {
		t.Fatalf("unexpected advice: %+v", advice)
	}
	tips, err := app.TipsCLI.List(ctx, "")
	if err != nil || len(tips) == 0 {
		t.Fatalf("expected tips, got %d (%v)", len(tips), err)
	}

	if err := app.AccountCLI.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := New(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	status := reopened.AccountCLI.Status(ctx)
	if status.LoggedIn || !status.HasAccount || status.Email != "me@example.com" {
		t.Fatalf("unexpected status after restart: %+v", status)
	}
	if goal := reopened.PreferencesCLI.Load(ctx).WeeklyGoal; goal != 60 {
		t.Fatalf("expected goal 60 after restart, got %d", goal)
	}
	sessions, err := reopened.SessionCLI.ListRecent(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("sessions are not persisted, got %d", len(sessions))
	}
	if _, err := reopened.AccountCLI.Login(ctx, "me@example.com", "secret1"); err != nil {
		t.Fatalf("login after restart: %v", err)
	}
}

func TestNewRejectsBadAdviceURL(t *testing.T) {
	t.Parallel()
	cfg := newTestConfig(t, "ftp://example.com/")
	if _, err := New(cfg, logging.Discard()); err == nil {
		t.Fatalf("expected error for non-http advice url")
	}
}

func TestNewFailsOnUnwritableDB(t *testing.T) {
	t.Parallel()
	cfg := newTestConfig(t, "http://127.0.0.1/")
	blocker := filepath.Join(cfg.DataDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	cfg.DBPath = filepath.Join(blocker, "studylog.db")
	if _, err := New(cfg, logging.Discard()); err == nil {
		t.Fatalf("expected error for invalid db path")
	}
}
