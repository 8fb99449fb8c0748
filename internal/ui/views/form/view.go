package form

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "studylog/internal/modules/session/dto"
	apperrors "studylog/internal/platform/errors"
	"studylog/internal/ui/components"
	"studylog/internal/ui/nav"
	"studylog/internal/ui/theme"
)

const (
	dateLayout     = "2006-01-02"
	correctInput   = "please correct input"
	fieldSubject   = 0
	fieldMinutes   = 1
	fieldDate      = 2
	focusTopicArea = 3
)

type Port interface {
	Get(ctx context.Context, id string) (sessiondto.SessionOutput, error)
	Add(ctx context.Context, subject string, minutes int, topics string, date time.Time) (sessiondto.SessionOutput, error)
	Update(ctx context.Context, id, subject string, minutes int, topics string, date time.Time) (sessiondto.SessionOutput, error)
}

// LoadedMsg answers an edit request. Err wraps ErrNotFound when the target is gone.
type LoadedMsg struct {
	ID      string
	Session sessiondto.SessionOutput
	Err     error
}

type SavedMsg struct {
	ID      string
	Session sessiondto.SessionOutput
	Err     error
}

type Model struct {
	port    Port
	fields  components.Fields
	topics  textarea.Model
	focus   int
	editID  string
	err     string
	saving  bool
	loading bool
	width   int
	height  int
}

func New(port Port) Model {
	fields := components.NewFields(
		components.FieldSpec{Label: "Subject", Placeholder: "Math", CharLimit: 80},
		components.FieldSpec{Label: "Minutes", Placeholder: "45", Digits: true, CharLimit: 5},
		components.FieldSpec{Label: "Date", Placeholder: "YYYY-MM-DD (empty = today)", CharLimit: 10},
	)
	ta := textarea.New()
	ta.Placeholder = "one topic per line"
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	ta.CharLimit = 2000
	return Model{port: port, fields: fields, topics: ta}
}

// StartAdd prepares an empty form.
func (m *Model) StartAdd() tea.Cmd {
	m.editID = ""
	m.err = ""
	m.saving = false
	m.loading = false
	m.topics.SetValue("")
	m.topics.Blur()
	m.focus = fieldSubject
	return m.fields.Reset()
}

// StartEdit loads id and fills the form once the LoadedMsg arrives.
func (m *Model) StartEdit(id string) tea.Cmd {
	m.editID = id
	m.err = ""
	m.saving = false
	m.loading = true
	port := m.port
	return func() tea.Msg {
		out, err := port.Get(context.Background(), id)
		return LoadedMsg{ID: id, Session: out, Err: err}
	}
}

func (m Model) Editing() bool  { return m.editID != "" }
func (m Model) EditID() string { return m.editID }
func (m Model) Err() string    { return m.err }
func (m Model) Saving() bool   { return m.saving }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.topics.SetWidth(boxWidth(m.width) - 6)
		return m, nil

	case LoadedMsg:
		if msg.ID != m.editID {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		m.fill(msg.Session)
		m.focus = fieldSubject
		m.topics.Blur()
		return m, m.fields.Focus(fieldSubject)

	case SavedMsg:
		m.saving = false
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrInvalidInput) {
				m.err = correctInput
			} else {
				m.err = msg.Err.Error()
			}
			return m, nil
		}
		m.err = ""
		return m, components.Navigate(nav.Go(nav.EventSaved))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, components.Navigate(nav.Go(nav.EventBack))
		case "ctrl+s":
			return m.submit()
		case "tab":
			return m, m.cycle(1)
		case "shift+tab":
			return m, m.cycle(-1)
		case "enter":
			if m.focus != focusTopicArea {
				return m, m.cycle(1)
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTopicArea {
		m.topics, cmd = m.topics.Update(msg)
	} else {
		m.fields, cmd = m.fields.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycle(delta int) tea.Cmd {
	m.focus = (m.focus + delta + 4) % 4
	if m.focus == focusTopicArea {
		m.fields.Blur()
		return m.topics.Focus()
	}
	m.topics.Blur()
	return m.fields.Focus(m.focus)
}

func (m *Model) fill(s sessiondto.SessionOutput) {
	m.fields.SetValue(fieldSubject, s.Subject)
	m.fields.SetValue(fieldMinutes, strconv.Itoa(s.Minutes))
	if s.Date.IsZero() {
		m.fields.SetValue(fieldDate, "")
	} else {
		m.fields.SetValue(fieldDate, s.Date.Format(dateLayout))
	}
	m.topics.SetValue(s.Topics)
}

// SetValues fills the inputs directly.
func (m *Model) SetValues(subject, minutes, date, topics string) {
	m.fields.SetValue(fieldSubject, subject)
	m.fields.SetValue(fieldMinutes, minutes)
	m.fields.SetValue(fieldDate, date)
	m.topics.SetValue(topics)
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.saving || m.loading {
		return m, nil
	}
	subject := m.fields.Value(fieldSubject)
	minutes, err := strconv.Atoi(strings.TrimSpace(m.fields.Value(fieldMinutes)))
	if err != nil {
		m.err = correctInput
		return m, nil
	}
	date, err := parseDate(m.fields.Value(fieldDate))
	if err != nil {
		m.err = correctInput
		return m, nil
	}
	topics := m.topics.Value()

	m.saving = true
	port := m.port
	id := m.editID
	return m, func() tea.Msg {
		ctx := context.Background()
		if id == "" {
			out, err := port.Add(ctx, subject, minutes, topics, date)
			return SavedMsg{Session: out, Err: err}
		}
		out, err := port.Update(ctx, id, subject, minutes, topics, date)
		return SavedMsg{ID: id, Session: out, Err: err}
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, raw, time.Local)
}

func (m Model) View() string {
	title := "Add session"
	if m.Editing() {
		title = "Edit session"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	if m.loading {
		sb.WriteString(theme.Muted.Render("loading…") + "\n")
	} else {
		sb.WriteString(m.fields.View())
		topicsLabel := theme.Label.Render("Topics")
		if m.focus == focusTopicArea {
			topicsLabel = theme.Label.Foreground(theme.Peach).Render("Topics")
		}
		sb.WriteString(topicsLabel + "\n" + m.topics.View() + "\n")
	}
	if m.err != "" {
		sb.WriteString("\n" + theme.Error.Render(m.err) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("tab: next field  ctrl+s: save  esc: cancel"))
	box := theme.PaneActive.Width(boxWidth(m.width)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, box)
}

func boxWidth(screen int) int {
	if screen <= 0 || screen-4 > 72 {
		return 72
	}
	return screen - 4
}
