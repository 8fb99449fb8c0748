package focus

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studylog/internal/modules/focus/domain"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
)

// TickMsg advances the timer. Gen ties it to the loop that scheduled it.
type TickMsg struct {
	Gen int
}

type Model struct {
	timer  domain.Timer
	fields components.Fields
	bar    progress.Model
	gen    int
	done   bool
	width  int
	height int
}

func New() Model {
	fields := components.NewFields(
		components.FieldSpec{Label: "Minutes", Placeholder: "25", Digits: true, CharLimit: 3},
	)
	fields.SetValue(0, "25")
	fields.Focus(0)
	return Model{
		timer:  domain.New("25"),
		fields: fields,
		bar:    progress.New(progress.WithGradient(theme.ProgressFrom, theme.ProgressTo)),
	}
}

func (m Model) Timer() domain.Timer { return m.timer }
func (m Model) Gen() int            { return m.gen }

// SetInput replaces the minutes text.
func (m *Model) SetInput(v string) { m.fields.SetValue(0, v) }

func (m *Model) Start() tea.Cmd {
	if m.timer.Running {
		return nil
	}
	m.timer.Start(m.fields.Value(0))
	m.done = false
	m.gen++
	return tick(m.gen)
}

func (m *Model) Pause() {
	m.timer.Pause()
	m.gen++
}

func (m *Model) Reset() {
	m.timer.Reset(m.fields.Value(0))
	m.done = false
	m.gen++
}

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return TickMsg{Gen: gen} })
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = clamp(m.width-20, 10, 60)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || !m.timer.Running {
			return m, nil
		}
		if m.timer.Tick() {
			m.done = true
			return m, nil
		}
		return m, tick(m.gen)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, components.Navigate(nav.Go(nav.EventBack))
		case "enter", "s":
			return m, m.Start()
		case "p", " ":
			m.Pause()
			return m, nil
		case "r":
			m.Reset()
			return m, nil
		}
	}
	if m.timer.Running {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields, cmd = m.fields.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	clock := lipgloss.NewStyle().Bold(true).Foreground(theme.Peach).Render(m.timer.Clock())
	state := theme.Muted.Render("stopped")
	switch {
	case m.timer.Running:
		state = theme.Success.Render("running")
	case m.done:
		state = theme.Hot.Render("done, take a break")
	case m.timer.RemainingSeconds != m.timer.DurationSeconds:
		state = theme.Muted.Render("paused")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Focus timer") + "\n\n")
	sb.WriteString(m.fields.View() + "\n")
	sb.WriteString(clock + "  " + state + "\n\n")
	sb.WriteString(m.bar.ViewAs(m.timer.Fraction()) + "\n\n")
	sb.WriteString(theme.Muted.Render("enter: start  p: pause  r: reset  esc: back"))
	box := theme.PaneActive.Width(60).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
