package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	accountdto "studylog/internal/modules/account/dto"
	advicedto "studylog/internal/modules/advice/dto"
	preferencesdto "studylog/internal/modules/preferences/dto"
	sessiondto "studylog/internal/modules/session/dto"
	statsdto "studylog/internal/modules/stats/dto"
	tipsdto "studylog/internal/modules/tips/dto"
	apperrors "studylog/internal/platform/errors"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	focusview "studylog/internal/ui/views/focus"
	formview "studylog/internal/ui/views/form"
	loginview "studylog/internal/ui/views/login"
	motivationview "studylog/internal/ui/views/motivation"
)

type fakeSessions struct {
	sessions map[string]sessiondto.SessionOutput
}

func (f *fakeSessions) Add(_ context.Context, subject string, minutes int, topics string, date time.Time) (sessiondto.SessionOutput, error) {
	out := sessiondto.SessionOutput{ID: fmt.Sprintf("s%d", len(f.sessions)+1), Subject: subject, Minutes: minutes, Topics: topics, Date: date}
	f.sessions[out.ID] = out
	return out, nil
}

func (f *fakeSessions) Update(_ context.Context, id, subject string, minutes int, topics string, date time.Time) (sessiondto.SessionOutput, error) {
	if _, ok := f.sessions[id]; !ok {
		return sessiondto.SessionOutput{}, apperrors.ErrNotFound
	}
	out := sessiondto.SessionOutput{ID: id, Subject: subject, Minutes: minutes, Topics: topics, Date: date}
	f.sessions[id] = out
	return out, nil
}

func (f *fakeSessions) Remove(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessions) Clear(context.Context) error {
	f.sessions = map[string]sessiondto.SessionOutput{}
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (sessiondto.SessionOutput, error) {
	out, ok := f.sessions[id]
	if !ok {
		return sessiondto.SessionOutput{}, apperrors.ErrNotFound
	}
	return out, nil
}

func (f *fakeSessions) ListRecent(context.Context) ([]sessiondto.SessionOutput, error) {
	out := make([]sessiondto.SessionOutput, 0, len(f.sessions))
	for _, s := range f.sessions {
		out = append(out, s)
	}
	return out, nil
}

type fakeStats struct{}

func (fakeStats) Summary(context.Context) (statsdto.SummaryOutput, error) {
	return statsdto.SummaryOutput{WeeklyGoal: 300}, nil
}

type fakePrefs struct{ goal int }

func (f *fakePrefs) Load(context.Context) preferencesdto.PreferencesOutput {
	return preferencesdto.PreferencesOutput{WeeklyGoal: f.goal}
}

func (f *fakePrefs) SetWeeklyGoal(_ context.Context, minutes int) error {
	f.goal = minutes
	return nil
}

type fakeAccount struct {
	loggedIn   bool
	logoutHits int
}

func (f *fakeAccount) Signup(_ context.Context, email, _, _ string) (accountdto.StatusOutput, error) {
	f.loggedIn = true
	return accountdto.StatusOutput{LoggedIn: true, Email: email, HasAccount: true}, nil
}

func (f *fakeAccount) Login(_ context.Context, email, _ string) (accountdto.StatusOutput, error) {
	f.loggedIn = true
	return accountdto.StatusOutput{LoggedIn: true, Email: email, HasAccount: true}, nil
}

func (f *fakeAccount) Logout(context.Context) error {
	f.loggedIn = false
	f.logoutHits++
	return nil
}

func (f *fakeAccount) Status(context.Context) accountdto.StatusOutput {
	return accountdto.StatusOutput{LoggedIn: f.loggedIn, Email: "me@example.com", HasAccount: true}
}

type fakeAdvice struct{ out advicedto.AdviceOutput }

func (f fakeAdvice) Get(context.Context) advicedto.AdviceOutput { return f.out }

type fakeTips struct{}

func (fakeTips) List(context.Context, string) ([]tipsdto.TipOutput, error) {
	return []tipsdto.TipOutput{{Title: "Rest", Category: "health", Body: "sleep"}}, nil
}

func newTestModel(loggedIn bool) (Model, *fakeSessions, *fakeAccount) {
	sessions := &fakeSessions{sessions: map[string]sessiondto.SessionOutput{}}
	account := &fakeAccount{loggedIn: loggedIn}
	m := NewModel(Ports{
		Sessions:    sessions,
		Stats:       fakeStats{},
		Preferences: &fakePrefs{goal: 300},
		Account:     account,
		Advice:      fakeAdvice{out: advicedto.AdviceOutput{Kind: "success", Text: "Keep going"}},
		Tips:        fakeTips{},
	}, loggedIn)
	return m, sessions, account
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("expected app.Model, got %T", next)
	}
	return out, cmd
}

func navigate(t *testing.T, m Model, ev nav.Event) Model {
	t.Helper()
	m, _ = update(t, m, components.NavigateMsg{Event: ev})
	return m
}

func loginResult(email string) loginview.ResultMsg {
	return loginview.ResultMsg{Status: accountdto.StatusOutput{LoggedIn: true, Email: email, HasAccount: true}}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialScreenFollowsLoginFlag(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	if m.State().Screen != nav.ScreenHome {
		t.Fatalf("expected home, got %s", m.State().Screen)
	}
	m, _, _ = newTestModel(false)
	if m.State().Screen != nav.ScreenLogin {
		t.Fatalf("expected login, got %s", m.State().Screen)
	}
}

func TestEditWithoutTargetStaysHome(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	m = navigate(t, m, nav.Edit(""))
	if m.State().Screen != nav.ScreenHome {
		t.Fatalf("expected home, got %s", m.State().Screen)
	}
}

func TestEditMissingTargetFallsBackHome(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	m = navigate(t, m, nav.Edit("gone"))
	if m.State().Screen != nav.ScreenEdit {
		t.Fatalf("expected edit, got %s", m.State().Screen)
	}
	m, cmd := update(t, m, formview.LoadedMsg{ID: "gone", Err: apperrors.ErrNotFound})
	if m.State().Screen != nav.ScreenHome {
		t.Fatalf("expected home fallback, got %s", m.State().Screen)
	}
	if cmd == nil {
		t.Fatalf("expected home reload command")
	}
}

func TestEditLoadsExistingSession(t *testing.T) {
	t.Parallel()
	m, sessions, _ := newTestModel(true)
	sessions.sessions["s1"] = sessiondto.SessionOutput{ID: "s1", Subject: "Math", Minutes: 30}

	m = navigate(t, m, nav.Edit("s1"))
	m, _ = update(t, m, formview.LoadedMsg{ID: "s1", Session: sessions.sessions["s1"]})
	if m.State().Screen != nav.ScreenEdit || m.State().EditTarget != "s1" {
		t.Fatalf("expected edit on s1, got %+v", m.State())
	}
	if m.formView.EditID() != "s1" {
		t.Fatalf("expected form bound to s1, got %q", m.formView.EditID())
	}
}

func TestSaveOfDeletedTargetFallsBackHome(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	m = navigate(t, m, nav.Edit("s9"))
	m, _ = update(t, m, formview.SavedMsg{ID: "s9", Err: fmt.Errorf("replace: %w", apperrors.ErrNotFound)})
	if m.State().Screen != nav.ScreenHome {
		t.Fatalf("expected home, got %s", m.State().Screen)
	}
}

func TestInvalidSaveStaysOnForm(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	m = navigate(t, m, nav.Go(nav.EventOpenAdd))
	m, _ = update(t, m, formview.SavedMsg{Err: fmt.Errorf("%w: subject is required", apperrors.ErrInvalidInput)})
	if m.State().Screen != nav.ScreenAdd {
		t.Fatalf("expected add, got %s", m.State().Screen)
	}
	if m.formView.Err() != "please correct input" {
		t.Fatalf("expected inline error, got %q", m.formView.Err())
	}
}

func TestAdviceLoadingClearsOnEveryOutcome(t *testing.T) {
	t.Parallel()
	outcomes := []advicedto.AdviceOutput{
		{Kind: "success", Text: "Keep going"},
		{Kind: "empty", Text: "No advice found..."},
		{Kind: "failure", Text: "Could not fetch advice. Check your connection and try again."},
	}
	for _, outcome := range outcomes {
		m, _, _ := newTestModel(true)
		m = navigate(t, m, nav.Go(nav.EventOpenMotivation))
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if cmd == nil || !m.motivationView.Loading() {
			t.Fatalf("expected loading after enter")
		}
		m, _ = update(t, m, motivationview.FetchedMsg{Advice: outcome})
		if m.motivationView.Loading() {
			t.Fatalf("loading flag stuck after %s", outcome.Kind)
		}
		if m.motivationView.Advice() != outcome {
			t.Fatalf("expected %+v, got %+v", outcome, m.motivationView.Advice())
		}
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	t.Parallel()
	m, _, account := newTestModel(true)
	m = navigate(t, m, nav.Go(nav.EventOpenSettings))

	m, cmd := update(t, m, components.LogoutRequestMsg{})
	if cmd == nil {
		t.Fatalf("expected logout command")
	}
	m, _ = update(t, m, cmd())
	if m.State().Screen != nav.ScreenLogin {
		t.Fatalf("expected login, got %s", m.State().Screen)
	}
	if account.logoutHits != 1 || account.loggedIn {
		t.Fatalf("expected logout persisted, got %+v", account)
	}
}

func TestFocusStaleTickIgnored(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	m = navigate(t, m, nav.Go(nav.EventOpenFocus))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.focusView.Timer().Running {
		t.Fatalf("expected running timer")
	}
	firstGen := m.focusView.Gen()

	m, _ = update(t, m, keyRunes("p"))
	m, cmd = update(t, m, focusview.TickMsg{Gen: firstGen})
	if cmd != nil {
		t.Fatalf("stale tick must not reschedule")
	}
	if got := m.focusView.Timer().RemainingSeconds; got != 1500 {
		t.Fatalf("expected 1500 remaining, got %d", got)
	}
}

func TestFocusTicksWhileAway(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	m = navigate(t, m, nav.Go(nav.EventOpenFocus))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = navigate(t, m, nav.Go(nav.EventBack))

	m, cmd := update(t, m, focusview.TickMsg{Gen: m.focusView.Gen()})
	if cmd == nil {
		t.Fatalf("expected next tick scheduled")
	}
	if got := m.focusView.Timer().RemainingSeconds; got != 1499 {
		t.Fatalf("expected 1499 remaining, got %d", got)
	}
}

func TestPaletteRespectsTransitionTable(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	m = navigate(t, m, nav.Go(nav.EventOpenSummary))

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "tips"})
	if m.State().Screen != nav.ScreenSummary {
		t.Fatalf("expected summary, got %s", m.State().Screen)
	}
	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "back"})
	if m.State().Screen != nav.ScreenHome {
		t.Fatalf("expected home, got %s", m.State().Screen)
	}
	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "tips"})
	if m.State().Screen != nav.ScreenTips {
		t.Fatalf("expected tips, got %s", m.State().Screen)
	}
}

func TestFormsCaptureGlobalKeys(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(true)
	if m.capturing() {
		t.Fatalf("home should not capture keys")
	}
	m = navigate(t, m, nav.Go(nav.EventOpenAdd))
	if !m.capturing() {
		t.Fatalf("add form should capture keys")
	}
	m, _, _ = newTestModel(false)
	if !m.capturing() {
		t.Fatalf("login should capture keys")
	}
}

func TestLoginResultNavigatesHome(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(false)
	m, cmd := update(t, m, loginResult("me@example.com"))
	if cmd == nil {
		t.Fatalf("expected navigation command")
	}
	m, _ = update(t, m, cmd())
	if m.State().Screen != nav.ScreenHome {
		t.Fatalf("expected home, got %s", m.State().Screen)
	}
	if m.email != "me@example.com" {
		t.Fatalf("expected email kept, got %q", m.email)
	}
}
