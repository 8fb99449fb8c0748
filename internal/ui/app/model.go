package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "studylog/internal/modules/account/dto"
	advicedto "studylog/internal/modules/advice/dto"
	preferencesdto "studylog/internal/modules/preferences/dto"
	sessiondto "studylog/internal/modules/session/dto"
	statsdto "studylog/internal/modules/stats/dto"
	tipsdto "studylog/internal/modules/tips/dto"
	apperrors "studylog/internal/platform/errors"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
	focusview "studylog/internal/ui/views/focus"
	formview "studylog/internal/ui/views/form"
	homeview "studylog/internal/ui/views/home"
	loginview "studylog/internal/ui/views/login"
	motivationview "studylog/internal/ui/views/motivation"
	settingsview "studylog/internal/ui/views/settings"
	signupview "studylog/internal/ui/views/signup"
	summaryview "studylog/internal/ui/views/summary"
	tipsview "studylog/internal/ui/views/tips"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Add(ctx context.Context, subject string, minutes int, topics string, date time.Time) (sessiondto.SessionOutput, error)
	Update(ctx context.Context, id, subject string, minutes int, topics string, date time.Time) (sessiondto.SessionOutput, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Get(ctx context.Context, id string) (sessiondto.SessionOutput, error)
	ListRecent(ctx context.Context) ([]sessiondto.SessionOutput, error)
}

type statsPort interface {
	Summary(ctx context.Context) (statsdto.SummaryOutput, error)
}

type preferencesPort interface {
	Load(ctx context.Context) preferencesdto.PreferencesOutput
	SetWeeklyGoal(ctx context.Context, minutes int) error
}

type accountPort interface {
	Signup(ctx context.Context, email, password, confirm string) (accountdto.StatusOutput, error)
	Login(ctx context.Context, email, password string) (accountdto.StatusOutput, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) accountdto.StatusOutput
}

type advicePort interface {
	Get(ctx context.Context) advicedto.AdviceOutput
}

type tipsPort interface {
	List(ctx context.Context, category string) ([]tipsdto.TipOutput, error)
}

// Ports groups the usecase handlers the TUI talks to.
type Ports struct {
	Sessions    sessionPort
	Stats       statsPort
	Preferences preferencesPort
	Account     accountPort
	Advice      advicePort
	Tips        tipsPort
}

// ─── async messages ───────────────────────────────────────────────────────────

type loggedOutMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Help    key.Binding
	Palette key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Palette, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Palette, k.Back, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the navigation state, the
// sub-view for every screen, the help overlay and the go-to palette. Usecase
// calls run inside sub-view commands; the root only routes their results.
type Model struct {
	account accountPort
	email   string

	state nav.State

	loginView      loginview.Model
	signupView     signupview.Model
	homeView       homeview.Model
	formView       formview.Model
	summaryView    summaryview.Model
	tipsView       tipsview.Model
	settingsView   settingsview.Model
	motivationView motivationview.Model
	focusView      focusview.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(ports Ports, loggedIn bool) Model {
	m := Model{
		account:        ports.Account,
		state:          nav.Initial(loggedIn),
		loginView:      loginview.New(ports.Account),
		signupView:     signupview.New(ports.Account),
		homeView:       homeview.New(homePortBridge{sessions: ports.Sessions, stats: ports.Stats}),
		formView:       formview.New(ports.Sessions),
		summaryView:    summaryview.New(ports.Stats),
		tipsView:       tipsview.New(ports.Tips),
		settingsView:   settingsview.New(ports.Preferences),
		motivationView: motivationview.New(ports.Advice),
		focusView:      focusview.New(),
		keys:           defaultKeys(),
		help:           help.New(),
		palette:        components.NewPalette(),
		status:         "ready",
	}
	if loggedIn && ports.Account != nil {
		m.email = ports.Account.Status(context.Background()).Email
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state.Screen == nav.ScreenHome {
		return m.homeView.Load()
	}
	return textinput.Blink
}

// State exposes the current navigation state.
func (m Model) State() nav.State { return m.state }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 48))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.NavigateMsg:
		return m.navigate(msg.Event)

	case components.LogoutRequestMsg:
		return m, m.logoutCmd()

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout: " + msg.err.Error()
		} else {
			m.status = "logged out"
		}
		m.email = ""
		return m.navigate(nav.Go(nav.EventLogout))

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case loginview.ResultMsg:
		if msg.Err == nil {
			m.email = msg.Status.Email
			m.status = "logged in"
		}
		m.loginView, cmd = m.loginView.Update(msg)
		return m, cmd

	case signupview.ResultMsg:
		if msg.Err == nil {
			m.email = msg.Status.Email
			m.status = "account created"
		}
		m.signupView, cmd = m.signupView.Update(msg)
		return m, cmd

	case homeview.LoadedMsg, homeview.ChangedMsg:
		m.homeView, cmd = m.homeView.Update(msg)
		return m, cmd

	case formview.LoadedMsg:
		if errors.Is(msg.Err, apperrors.ErrNotFound) {
			return m.dropEditTarget(msg.ID)
		}
		m.formView, cmd = m.formView.Update(msg)
		return m, cmd

	case formview.SavedMsg:
		if errors.Is(msg.Err, apperrors.ErrNotFound) {
			return m.dropEditTarget(msg.ID)
		}
		if msg.Err == nil {
			m.status = "saved " + msg.Session.Subject
		}
		m.formView, cmd = m.formView.Update(msg)
		return m, cmd

	case summaryview.LoadedMsg:
		m.summaryView, cmd = m.summaryView.Update(msg)
		return m, cmd

	case tipsview.LoadedMsg:
		m.tipsView, cmd = m.tipsView.Update(msg)
		return m, cmd

	case settingsview.LoadedMsg, settingsview.SavedMsg:
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd

	case motivationview.FetchedMsg, spinner.TickMsg:
		m.motivationView, cmd = m.motivationView.Update(msg)
		return m, cmd

	// The countdown keeps going while the user is on another screen.
	case focusview.TickMsg:
		m.focusView, cmd = m.focusView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case ":":
				if m.state.Screen.LoggedIn() {
					return m, m.palette.Open()
				}
			}
		}
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state.Screen {
	case nav.ScreenLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case nav.ScreenSignup:
		m.signupView, cmd = m.signupView.Update(msg)
	case nav.ScreenHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case nav.ScreenAdd, nav.ScreenEdit:
		m.formView, cmd = m.formView.Update(msg)
	case nav.ScreenSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	case nav.ScreenTips:
		m.tipsView, cmd = m.tipsView.Update(msg)
	case nav.ScreenSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case nav.ScreenMotivation:
		m.motivationView, cmd = m.motivationView.Update(msg)
	case nav.ScreenFocus:
		m.focusView, cmd = m.focusView.Update(msg)
	}
	return m, cmd
}

// navigate applies ev and runs the entry command of the new screen.
func (m Model) navigate(ev nav.Event) (tea.Model, tea.Cmd) {
	next := nav.Transition(m.state, ev)
	if next == m.state {
		return m, nil
	}
	m.state = next
	m.showHelp = false
	return m, m.enter()
}

func (m *Model) enter() tea.Cmd {
	switch m.state.Screen {
	case nav.ScreenLogin:
		return m.loginView.Reset()
	case nav.ScreenSignup:
		return m.signupView.Reset()
	case nav.ScreenHome:
		return m.homeView.Load()
	case nav.ScreenAdd:
		return m.formView.StartAdd()
	case nav.ScreenEdit:
		return m.formView.StartEdit(m.state.EditTarget)
	case nav.ScreenSummary:
		return m.summaryView.Load()
	case nav.ScreenTips:
		return m.tipsView.Load()
	case nav.ScreenSettings:
		return m.settingsView.Load()
	}
	return nil
}

// dropEditTarget handles a session that vanished while it was being edited.
func (m Model) dropEditTarget(id string) (tea.Model, tea.Cmd) {
	before := m.state
	m.state = nav.Resolve(m.state, func(target string) bool { return target != id })
	if m.state == before {
		return m, nil
	}
	m.status = "that session no longer exists"
	return m, m.enter()
}

// capturing reports whether the active screen takes free text, in which case
// single-letter global bindings must yield to it.
func (m Model) capturing() bool {
	switch m.state.Screen {
	case nav.ScreenLogin, nav.ScreenSignup, nav.ScreenAdd, nav.ScreenEdit:
		return true
	case nav.ScreenHome:
		return m.homeView.Filtering()
	case nav.ScreenTips:
		return m.tipsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: max(m.height-4, 1)}
	m.loginView, _ = m.loginView.Update(sz)
	m.signupView, _ = m.signupView.Update(sz)
	m.homeView, _ = m.homeView.Update(sz)
	m.formView, _ = m.formView.Update(sz)
	m.summaryView, _ = m.summaryView.Update(sz)
	m.tipsView, _ = m.tipsView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
	m.motivationView, _ = m.motivationView.Update(sz)
	m.focusView, _ = m.focusView.Update(sz)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		groups := m.keys.FullHelp()
		if m.state.Screen == nav.ScreenHome {
			groups = append(m.homeView.Keys().FullHelp(), groups...)
		}
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.FullHelpView(groups))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) activeView() string {
	switch m.state.Screen {
	case nav.ScreenLogin:
		return m.loginView.View()
	case nav.ScreenSignup:
		return m.signupView.View()
	case nav.ScreenHome:
		return m.homeView.View()
	case nav.ScreenAdd, nav.ScreenEdit:
		return m.formView.View()
	case nav.ScreenSummary:
		return m.summaryView.View()
	case nav.ScreenTips:
		return m.tipsView.View()
	case nav.ScreenSettings:
		return m.settingsView.View()
	case nav.ScreenMotivation:
		return m.motivationView.View()
	case nav.ScreenFocus:
		return m.focusView.View()
	}
	return ""
}

func (m Model) renderHeader() string {
	bar := theme.Hot.Render("studylog") + "  " + theme.Title.Render(m.state.Screen.String())
	if m.email != "" && m.state.Screen.LoggedIn() {
		bar += theme.Muted.Render("  " + m.email)
	}
	if t := m.focusView.Timer(); t.Running && m.state.Screen != nav.ScreenFocus {
		bar += "  " + theme.Hot.Render("● "+t.Clock())
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.state.Screen == nav.ScreenHome {
		right = theme.Muted.Render(m.help.ShortHelpView(m.homeView.Keys().ShortHelp()))
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

var paletteEvents = map[string]nav.EventKind{
	"add":        nav.EventOpenAdd,
	"summary":    nav.EventOpenSummary,
	"tips":       nav.EventOpenTips,
	"settings":   nav.EventOpenSettings,
	"motivation": nav.EventOpenMotivation,
	"focus":      nav.EventOpenFocus,
	"back":       nav.EventBack,
}

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	command := strings.ToLower(strings.TrimSpace(input))
	switch command {
	case "":
		return m, nil
	case "quit":
		return m, tea.Quit
	case "logout":
		return m, m.logoutCmd()
	}
	kind, ok := paletteEvents[command]
	if !ok {
		m.status = "unknown command: " + command
		return m, nil
	}
	if nav.Transition(m.state, nav.Go(kind)) == m.state {
		m.status = command + " is not reachable from " + m.state.Screen.String()
		return m, nil
	}
	return m.navigate(nav.Go(kind))
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) logoutCmd() tea.Cmd {
	account := m.account
	return func() tea.Msg {
		if account == nil {
			return loggedOutMsg{}
		}
		return loggedOutMsg{err: account.Logout(context.Background())}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────

type homePortBridge struct {
	sessions sessionPort
	stats    statsPort
}

func (b homePortBridge) ListRecent(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return b.sessions.ListRecent(ctx)
}
func (b homePortBridge) Summary(ctx context.Context) (statsdto.SummaryOutput, error) {
	return b.stats.Summary(ctx)
}
func (b homePortBridge) Remove(ctx context.Context, id string) error {
	return b.sessions.Remove(ctx, id)
}
func (b homePortBridge) Clear(ctx context.Context) error {
	return b.sessions.Clear(ctx)
}
