package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a full-screen state of the surface (help, font size) drawn
// under the application header.
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update forwards msg to the content and returns the Dialog itself.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

func (d *Dialog) View() string {
	return renderDialogHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped model so callers can read its result.
func (d *Dialog) Content() tea.Model {
	return d.content
}
