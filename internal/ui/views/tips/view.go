package tips

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	tipsdto "studylog/internal/modules/tips/dto"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
)

type Port interface {
	List(ctx context.Context, category string) ([]tipsdto.TipOutput, error)
}

type LoadedMsg struct {
	Tips []tipsdto.TipOutput
	Err  error
}

type tipItem struct {
	tip tipsdto.TipOutput
}

func (i tipItem) Title() string       { return i.tip.Title }
func (i tipItem) Description() string { return i.tip.Category }
func (i tipItem) FilterValue() string { return i.tip.Title + " " + i.tip.Category }

type Model struct {
	port     Port
	list     list.Model
	body     viewport.Model
	renderer *glamour.TermRenderer
	loaded   bool
	err      string
	width    int
	height   int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Study tips"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)
	return Model{port: port, list: l, body: vp, renderer: r}
}

// Load fetches the catalog once; later visits reuse it.
func (m Model) Load() tea.Cmd {
	if m.loaded {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		tips, err := port.List(context.Background(), "")
		return LoadedMsg{Tips: tips, Err: err}
	}
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.body.SetContent(m.renderSelected())

	case LoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.loaded = true
		m.err = ""
		items := make([]list.Item, len(msg.Tips))
		for i, tip := range msg.Tips {
			items[i] = tipItem{tip: tip}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.body.SetContent(m.renderSelected())
		m.body.GotoTop()
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if !m.Filtering() && msg.String() == "esc" {
			return m, components.Navigate(nav.Go(nav.EventBack))
		}
	}

	prev := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prev {
		m.body.SetContent(m.renderSelected())
		m.body.GotoTop()
	}
	var vCmd tea.Cmd
	m.body, vCmd = m.body.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.err != "" {
		return theme.Error.Render("tips unavailable: " + m.err)
	}
	listW := m.width * 4 / 10
	detailW := m.width - listW
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Width(max(detailW-2, 1)).
		Height(max(m.height-2, 1)).
		Render(m.body.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.body.Width = max(detailW-4, 1)
	m.body.Height = max(m.height-4, 1)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.body.Width),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderSelected() string {
	item, ok := m.list.SelectedItem().(tipItem)
	if !ok {
		return theme.Muted.Render("No tips to show")
	}
	md := "# " + item.tip.Title + "\n\n" + item.tip.Body + "\n"
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
