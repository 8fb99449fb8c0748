package home

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "studylog/internal/modules/session/dto"
	statsdto "studylog/internal/modules/stats/dto"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
)

type Port interface {
	ListRecent(ctx context.Context) ([]sessiondto.SessionOutput, error)
	Summary(ctx context.Context) (statsdto.SummaryOutput, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type LoadedMsg struct {
	Sessions []sessiondto.SessionOutput
	Summary  statsdto.SummaryOutput
	Err      error
}

// ChangedMsg reports a delete or clear; the view reloads after it.
type ChangedMsg struct {
	Err error
}

type sessionItem struct {
	session sessiondto.SessionOutput
}

func (i sessionItem) Title() string {
	return fmt.Sprintf("%s  %d min", i.session.Subject, i.session.Minutes)
}

func (i sessionItem) Description() string {
	desc := i.session.Date.Format("Mon 02 Jan 2006")
	if len(i.session.TopicList) > 0 {
		desc += "  " + strings.Join(i.session.TopicList, ", ")
	}
	return desc
}

func (i sessionItem) FilterValue() string { return i.session.Subject }

type keyMap struct {
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Clear      key.Binding
	Summary    key.Binding
	Tips       key.Binding
	Settings   key.Binding
	Motivation key.Binding
	Focus      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Clear:      key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
		Summary:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary")),
		Tips:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tips")),
		Settings:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "settings")),
		Motivation: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "motivation")),
		Focus:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Summary, k.Focus}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete, k.Clear},
		{k.Summary, k.Tips, k.Settings, k.Motivation, k.Focus},
	}
}

type Model struct {
	port     Port
	list     list.Model
	bar      progress.Model
	keys     keyMap
	summary  statsdto.SummaryOutput
	sessions []sessiondto.SessionOutput
	err      string
	loaded   bool
	width    int
	height   int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Sessions"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("session", "sessions")

	return Model{
		port: port,
		list: l,
		bar:  progress.New(progress.WithGradient(theme.ProgressFrom, theme.ProgressTo)),
		keys: defaultKeys(),
	}
}

// Load refreshes sessions and the weekly summary together.
func (m Model) Load() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		ctx := context.Background()
		sessions, err := port.ListRecent(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		summary, err := port.Summary(ctx)
		return LoadedMsg{Sessions: sessions, Summary: summary, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loaded = true
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.err = ""
		m.sessions = msg.Sessions
		m.summary = msg.Summary
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{session: s}
		}
		return m, m.list.SetItems(items)

	case ChangedMsg:
		if msg.Err != nil {
			m.err = msg.Err.Error()
		}
		return m, m.Load()

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, components.Navigate(nav.Go(nav.EventOpenAdd))
		case key.Matches(msg, m.keys.Edit):
			id, _ := m.SelectedID()
			return m, components.Navigate(nav.Edit(id))
		case key.Matches(msg, m.keys.Delete):
			if id, ok := m.SelectedID(); ok {
				return m, m.removeCmd(id)
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			return m, m.clearCmd()
		case key.Matches(msg, m.keys.Summary):
			return m, components.Navigate(nav.Go(nav.EventOpenSummary))
		case key.Matches(msg, m.keys.Tips):
			return m, components.Navigate(nav.Go(nav.EventOpenTips))
		case key.Matches(msg, m.keys.Settings):
			return m, components.Navigate(nav.Go(nav.EventOpenSettings))
		case key.Matches(msg, m.keys.Motivation):
			return m, components.Navigate(nav.Go(nav.EventOpenMotivation))
		case key.Matches(msg, m.keys.Focus):
			return m, components.Navigate(nav.Go(nav.EventOpenFocus))
		}
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := m.renderHeader()
	listH := m.height - lipgloss.Height(header)
	if listH < 3 {
		listH = 3
	}
	body := lipgloss.NewStyle().Width(m.width).Height(listH).Render(m.list.View())
	if m.loaded && len(m.sessions) == 0 {
		body = lipgloss.Place(m.width, listH, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("No sessions yet. Press a to log one."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// SelectedID returns the highlighted session, if any.
func (m Model) SelectedID() (string, bool) {
	if item, ok := m.list.SelectedItem().(sessionItem); ok {
		return item.session.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Keys() keyMap { return m.keys }

func (m Model) Sessions() []sessiondto.SessionOutput { return m.sessions }

func (m *Model) resize() {
	m.bar.Width = m.width - 24
	if m.bar.Width < 10 {
		m.bar.Width = 10
	}
	m.list.SetSize(m.width, m.height-4)
}

func (m Model) renderHeader() string {
	s := m.summary
	goal := fmt.Sprintf("%s %d / %d min this week",
		theme.Title.Render("Weekly goal"), s.Last7DaysMinutes, s.WeeklyGoal)
	bar := m.bar.ViewAs(s.Progress)
	line := theme.Muted.Render(fmt.Sprintf("total %d min across %d sessions", s.TotalMinutes, s.SessionCount))
	if s.HasTop {
		line += theme.Muted.Render("  top: ") + theme.Hot.Render(s.TopSubject)
	}
	out := goal + "\n" + bar + "\n" + line
	if m.err != "" {
		out += "\n" + theme.Error.Render(m.err)
	}
	return out + "\n"
}

func (m Model) removeCmd(id string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		return ChangedMsg{Err: port.Remove(context.Background(), id)}
	}
}

func (m Model) clearCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		return ChangedMsg{Err: port.Clear(context.Background())}
	}
}
