package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "studylog/internal/modules/stats/dto"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
)

type Port interface {
	Summary(ctx context.Context) (statsdto.SummaryOutput, error)
}

type LoadedMsg struct {
	Summary statsdto.SummaryOutput
	Err     error
}

type Model struct {
	port    Port
	bar     progress.Model
	summary statsdto.SummaryOutput
	err     string
	loading bool
	width   int
	height  int
}

func New(port Port) Model {
	return Model{
		port: port,
		bar:  progress.New(progress.WithGradient(theme.ProgressFrom, theme.ProgressTo)),
	}
}

// Load recomputes the summary; nothing is cached between visits.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	port := m.port
	return func() tea.Msg {
		out, err := port.Summary(context.Background())
		return LoadedMsg{Summary: out, Err: err}
	}
}

func (m Model) Summary() statsdto.SummaryOutput { return m.summary }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = clampWidth(m.width - 20)
	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		m.summary = msg.Summary
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, components.Navigate(nav.Go(nav.EventBack))
		case "r":
			return m, m.Load()
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Summary") + "\n\n")
	if m.loading {
		sb.WriteString(theme.Muted.Render("computing…") + "\n")
	}
	if m.err != "" {
		sb.WriteString(theme.Error.Render(m.err) + "\n")
	}
	row := func(label, value string) {
		sb.WriteString(theme.Label.Width(16).Render(label) + value + "\n")
	}
	row("Sessions", fmt.Sprintf("%d", s.SessionCount))
	row("Total", fmt.Sprintf("%d min", s.TotalMinutes))
	row("Last 7 days", fmt.Sprintf("%d min", s.Last7DaysMinutes))
	row("Weekly goal", fmt.Sprintf("%d min", s.WeeklyGoal))
	sb.WriteString("\n" + m.bar.ViewAs(s.Progress) + "\n\n")
	if s.HasTop {
		row("Top subject", theme.Hot.Render(s.TopSubject))
	} else {
		row("Top subject", theme.Muted.Render("none yet"))
	}

	if len(s.BySubject) > 0 {
		sb.WriteString("\n" + theme.Title.Render("By subject") + "\n")
		maxMinutes := 0
		for _, entry := range s.BySubject {
			if entry.Minutes > maxMinutes {
				maxMinutes = entry.Minutes
			}
		}
		barW := clampWidth(m.width - 40)
		for _, entry := range s.BySubject {
			n := 0
			if maxMinutes > 0 {
				n = entry.Minutes * barW / maxMinutes
			}
			bar := lipgloss.NewStyle().Foreground(theme.Sapphire).Render(strings.Repeat("█", n))
			sb.WriteString(fmt.Sprintf("%s %s %d min\n", theme.Label.Width(16).Render(entry.Subject), bar, entry.Minutes))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("r: refresh  esc: back"))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

func clampWidth(w int) int {
	if w < 10 {
		return 10
	}
	if w > 60 {
		return 60
	}
	return w
}
