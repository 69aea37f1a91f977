package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pywalfox/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Navigation") + "\n")
	b.WriteString(renderBinding(keys.Navigation.Up.Binding))
	b.WriteString(renderBinding(keys.Navigation.Down.Binding))
	b.WriteString(renderBinding(keys.Navigation.Activate.Binding))
	b.WriteString(renderBinding(keys.Navigation.Decrease.Binding))
	b.WriteString(renderBinding(keys.Navigation.Increase.Binding))
	b.WriteString(renderBinding(keys.Navigation.Close.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Theme") + "\n")
	b.WriteString(renderBinding(keys.Theme.Fetch.Binding))
	b.WriteString(renderBinding(keys.Theme.Disable.Binding))
	b.WriteString(renderBinding(keys.Theme.ThemeMode.Binding))
	b.WriteString(renderBinding(keys.Theme.FontSize.Binding))
	b.WriteString(renderBinding(keys.Theme.ToggleTemplate.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.Help.Binding))
	b.WriteString(renderBinding(keys.Application.Quit.Binding))
	b.WriteString(renderBinding(keys.Application.ForceQuit.Binding))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Indicators (read-only)") + "\n")
	b.WriteString(renderShortcut("…", "waiting for the native helper"))
	b.WriteString(renderShortcut("✓", "option enabled or mode selected"))
	b.WriteString(renderShortcut("-", "role has no palette color yet"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys(h.keys.Navigation.Up.Binding.Keys()...)
	h.viewport.KeyMap.Down.SetKeys(h.keys.Navigation.Down.Binding.Keys()...)
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Navigation.Close.Binding, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	closeKeys := strings.Join([]string{
		h.keys.Navigation.Close.Binding.Help().Key,
		h.keys.Application.Quit.Binding.Help().Key,
		h.keys.Application.Help.Binding.Help().Key,
	}, ", ")
	footer := theme.HelpStyle.Render("Press " + closeKeys + " to close • ↑↓/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
