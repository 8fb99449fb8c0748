package signup

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
	Signup(ctx context.Context, email, password, confirm string) (accountdto.StatusOutput, error)
}

type ResultMsg struct {
	Status accountdto.StatusOutput
	Err    error
}

const (
	fieldEmail = iota
	fieldPassword
	fieldConfirm
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
		components.FieldSpec{Label: "Password", Placeholder: "at least 6 characters", Password: true},
		components.FieldSpec{Label: "Confirm", Password: true},
	)
	fields.Focus(fieldEmail)
	return Model{port: port, fields: fields}
}

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
			if errors.Is(msg.Err, apperrors.ErrInvalidInput) {
				m.err = "please correct input: " + strings.TrimPrefix(msg.Err.Error(), apperrors.ErrInvalidInput.Error()+": ")
			} else {
				m.err = "sign up failed: " + msg.Err.Error()
			}
			return m, nil
		}
		m.err = ""
		return m, components.Navigate(nav.Go(nav.EventSignedUp))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, components.Navigate(nav.Go(nav.EventBack))
		case "tab", "down":
			return m, m.fields.Next()
		case "shift+tab", "up":
			return m, m.fields.Prev()
		case "enter":
			if !m.fields.Last() {
				return m, m.fields.Next()
			}
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			port := m.port
			email := m.fields.Value(fieldEmail)
			password := m.fields.Value(fieldPassword)
			confirm := m.fields.Value(fieldConfirm)
			return m, func() tea.Msg {
				status, err := port.Signup(context.Background(), email, password, confirm)
				return ResultMsg{Status: status, Err: err}
			}
		}
	}

	var cmd tea.Cmd
	m.fields, cmd = m.fields.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Create an account") + "\n\n")
	sb.WriteString(m.fields.View())
	if m.err != "" {
		sb.WriteString("\n" + theme.Error.Render(m.err) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: next / sign up  esc: back to login"))
	box := theme.PaneActive.Width(56).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
