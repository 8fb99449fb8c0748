package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"studylog/internal/ui/nav"
)

// NavigateMsg asks the root model to apply a navigation event.
type NavigateMsg struct{ Event nav.Event }

// LogoutRequestMsg asks the root model to clear the login flag and return to Login.
type LogoutRequestMsg struct{}

func Navigate(ev nav.Event) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Event: ev} }
}

func RequestLogout() tea.Msg { return LogoutRequestMsg{} }
