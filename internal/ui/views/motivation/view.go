package motivation

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	advicedto "studylog/internal/modules/advice/dto"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
)

type Port interface {
	Get(ctx context.Context) advicedto.AdviceOutput
}

// FetchedMsg carries one completed advice request.
type FetchedMsg struct {
	Advice advicedto.AdviceOutput
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseDone
)

type Model struct {
	port    Port
	spinner spinner.Model
	phase   Phase
	advice  advicedto.AdviceOutput
	width   int
	height  int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp}
}

func (m Model) Phase() Phase                   { return m.phase }
func (m Model) Loading() bool                  { return m.phase == PhaseLoading }
func (m Model) Advice() advicedto.AdviceOutput { return m.advice }

// Fetch starts one request unless one is already in flight.
func (m *Model) Fetch() tea.Cmd {
	if m.phase == PhaseLoading {
		return nil
	}
	m.phase = PhaseLoading
	port := m.port
	return tea.Batch(func() tea.Msg {
		return FetchedMsg{Advice: port.Get(context.Background())}
	}, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case FetchedMsg:
		m.phase = PhaseDone
		m.advice = msg.Advice

	case spinner.TickMsg:
		if m.phase != PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, components.Navigate(nav.Go(nav.EventBack))
		case "enter", "r", " ":
			return m, m.Fetch()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.phase {
	case PhaseIdle:
		body = theme.Muted.Render("Press enter for a piece of advice.")
	case PhaseLoading:
		body = m.spinner.View() + " fetching advice…"
	case PhaseDone:
		if m.advice.Failed() {
			body = theme.Error.Render(m.advice.Text)
		} else {
			body = lipgloss.NewStyle().Foreground(theme.Yellow).Italic(true).Render("“" + m.advice.Text + "”")
		}
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Motivation") + "\n\n")
	sb.WriteString(body + "\n\n")
	sb.WriteString(theme.Muted.Render("enter: new advice  esc: back"))
	box := theme.PaneActive.Width(60).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
