package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pywalfox/internal/messaging"
)

// eventMsg carries one inbound notification from the bus into Update.
type eventMsg struct {
	event messaging.Event
}

// eventsClosedMsg is sent once the bus stops forwarding.
type eventsClosedMsg struct{}

// tickMsg drives request timeouts and tip rotation.
type tickMsg time.Time

// startMsg is delivered once after Init with the terminal's background guess.
type startMsg struct {
	prefersDark bool
}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowFontSizeMsg requests the font size dialog
type ShowFontSizeMsg struct{}

// waitForEvent blocks on events and turns the next one into a tea.Msg.
func waitForEvent(events <-chan messaging.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{event: evt}
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func start(prefersDark func() bool) tea.Cmd {
	return func() tea.Msg {
		return startMsg{prefersDark: prefersDark()}
	}
}
