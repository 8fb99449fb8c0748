package login

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "studylog/internal/modules/account/dto"
	apperrors "studylog/internal/platform/errors"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
)

type Port interface {
	Login(ctx context.Context, email, password string) (accountdto.StatusOutput, error)
}

// ResultMsg carries the outcome of a login attempt.
type ResultMsg struct {
	Status accountdto.StatusOutput
	Err    error
}

const (
	fieldEmail = iota
	fieldPassword
)

type Model struct {
	port       Port
	fields     components.Fields
	err        string
	submitting bool
	width      int
	height     int
}

func New(port Port) Model {
	fields := components.NewFields(
		components.FieldSpec{Label: "Email", Placeholder: "you@example.com"},
		components.FieldSpec{Label: "Password", Password: true},
	)
	fields.Focus(fieldEmail)
	return Model{port: port, fields: fields}
}

// Reset clears the form, typically after logout.
func (m *Model) Reset() tea.Cmd {
	m.err = ""
	m.submitting = false
	return m.fields.Reset()
}

func (m Model) Err() string { return m.err }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultMsg:
		m.submitting = false
		if msg.Err != nil {
			m.err = describe(msg.Err)
			return m, nil
		}
		m.err = ""
		m.fields.SetValue(fieldPassword, "")
		return m, components.Navigate(nav.Go(nav.EventLoggedIn))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+n":
			return m, components.Navigate(nav.Go(nav.EventOpenSignup))
		case "tab", "down":
			return m, m.fields.Next()
		case "shift+tab", "up":
			return m, m.fields.Prev()
		case "enter":
			if !m.fields.Last() {
				return m, m.fields.Next()
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.fields, cmd = m.fields.Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	email := strings.TrimSpace(m.fields.Value(fieldEmail))
	password := m.fields.Value(fieldPassword)
	if email == "" || password == "" {
		m.err = "please correct input"
		return m, nil
	}
	m.submitting = true
	port := m.port
	return m, func() tea.Msg {
		status, err := port.Login(context.Background(), email, password)
		return ResultMsg{Status: status, Err: err}
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNoAccount):
		return "no account yet, press ctrl+n to sign up"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "wrong email or password"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "please correct input"
	default:
		return "login failed: " + err.Error()
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Welcome back") + "\n\n")
	sb.WriteString(m.fields.View())
	if m.err != "" {
		sb.WriteString("\n" + theme.Error.Render(m.err) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: log in  tab: next field  ctrl+n: sign up"))
	box := theme.PaneActive.Width(56).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
