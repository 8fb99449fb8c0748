package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	preferencesdto "studylog/internal/modules/preferences/dto"
	apperrors "studylog/internal/platform/errors"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
)

type Port interface {
	Load(ctx context.Context) preferencesdto.PreferencesOutput
	SetWeeklyGoal(ctx context.Context, minutes int) error
}

type LoadedMsg struct {
	Prefs preferencesdto.PreferencesOutput
}

type SavedMsg struct {
	Goal int
	Err  error
}

type Model struct {
	port   Port
	fields components.Fields
	prefs  preferencesdto.PreferencesOutput
	notice string
	err    string
	width  int
	height int
}

func New(port Port) Model {
	fields := components.NewFields(
		components.FieldSpec{Label: "Goal", Placeholder: "minutes per week", Digits: true, CharLimit: 6},
	)
	fields.Focus(0)
	return Model{port: port, fields: fields}
}

func (m *Model) Load() tea.Cmd {
	m.notice = ""
	m.err = ""
	port := m.port
	return func() tea.Msg {
		return LoadedMsg{Prefs: port.Load(context.Background())}
	}
}

func (m Model) Prefs() preferencesdto.PreferencesOutput { return m.prefs }
func (m Model) Err() string                             { return m.err }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoadedMsg:
		m.prefs = msg.Prefs
		m.fields.SetValue(0, strconv.Itoa(msg.Prefs.WeeklyGoal))
		return m, m.fields.Focus(0)

	case SavedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrInvalidInput) {
				m.err = "please correct input"
			} else {
				m.err = "could not save: " + msg.Err.Error()
			}
			m.notice = ""
			return m, nil
		}
		m.err = ""
		m.prefs.WeeklyGoal = msg.Goal
		m.notice = fmt.Sprintf("weekly goal set to %d min", msg.Goal)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, components.Navigate(nav.Go(nav.EventBack))
		case "ctrl+l", "L":
			return m, components.RequestLogout
		case "enter":
			goal, err := strconv.Atoi(strings.TrimSpace(m.fields.Value(0)))
			if err != nil || goal <= 0 {
				m.err = "please correct input"
				m.notice = ""
				return m, nil
			}
			port := m.port
			return m, func() tea.Msg {
				return SavedMsg{Goal: goal, Err: port.SetWeeklyGoal(context.Background(), goal)}
			}
		}
	}
	var cmd tea.Cmd
	m.fields, cmd = m.fields.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	email := m.prefs.Email
	if email == "" {
		email = "(no account)"
	}
	sb.WriteString(theme.Label.Render("Account") + " " + email + "\n")
	sb.WriteString(m.fields.View())
	if m.err != "" {
		sb.WriteString("\n" + theme.Error.Render(m.err) + "\n")
	}
	if m.notice != "" {
		sb.WriteString("\n" + theme.Success.Render(m.notice) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: save goal  L: log out  esc: back"))
	box := theme.PaneActive.Width(56).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
