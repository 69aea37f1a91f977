package ui

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pywalfox/internal/config"
	"pywalfox/internal/controller"
	"pywalfox/internal/dialog"
	"pywalfox/internal/domain"
	"pywalfox/internal/messaging"
	"pywalfox/internal/ports"
	"pywalfox/internal/theme"
	"pywalfox/internal/view"
)

type uiState int

const (
	stateSettings uiState = iota
	stateFontSize
	stateHelp
)

const (
	defaultErrorClearDelay = 5 * time.Second
	defaultTickInterval    = time.Second
	tipRotationTicks       = 8
)

// Options configures a settings surface.
type Options struct {
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	LogLines        int
	// PrefersDark reports the system color scheme; it defaults to the
	// terminal background of the local renderer.
	PrefersDark    func() bool
	RequestTimeout time.Duration
	TickInterval   time.Duration
}

// Model is the Bubble Tea settings surface. It owns a controller and renders
// every frame the controller projects.
type Model struct {
	controller   *controller.Controller
	cursor       int
	devMode      bool
	elements     *Elements
	errorManager *ErrorManager
	events       <-chan messaging.Event
	fontSizeForm *Dialog
	frame        view.Frame
	height       int
	help         help.Model
	helpScreen   *Dialog
	keys         KeyMap
	modeCursor   int
	pickerCursor int
	prefersDark  func() bool
	state        uiState
	templateOpen bool
	tickInterval time.Duration
	ticks        int
	width        int
}

var _ controller.Renderer = (*Model)(nil)

// NewModel creates the surface. bus carries intents out and events carries
// the merged notification stream in.
func NewModel(bus controller.Sender, events <-chan messaging.Event, opts Options) *Model {
	if opts.ErrorClearDelay == 0 {
		opts.ErrorClearDelay = defaultErrorClearDelay
	}
	if opts.TickInterval == 0 {
		opts.TickInterval = defaultTickInterval
	}
	if opts.PrefersDark == nil {
		opts.PrefersDark = lipgloss.HasDarkBackground
	}

	m := &Model{
		devMode:      opts.DevMode,
		elements:     NewElements(),
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		events:       events,
		help:         help.New(),
		keys:         NewKeyMap(opts.Keys),
		prefersDark:  opts.PrefersDark,
		state:        stateSettings,
		tickInterval: opts.TickInterval,
	}
	m.controller = controller.New(bus, m.elements, m, controller.Config{
		LogLines:       opts.LogLines,
		RequestTimeout: opts.RequestTimeout,
	})
	m.frame = m.controller.Frame()
	return m
}

// Render implements controller.Renderer.
func (m *Model) Render(frame view.Frame) {
	m.frame = frame
	m.clampCursor()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tick(m.tickInterval), start(m.prefersDark))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.controller.Handle(msg.event)
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		return m, tea.Quit
	case tickMsg:
		m.ticks++
		m.controller.Tick(time.Time(msg))
		return m, tick(m.tickInterval)
	case startMsg:
		m.controller.SystemThemeChanged(msg.prefersDark)
		return m, m.check(m.controller.RequestInitialData())
	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.state == stateHelp && m.helpScreen != nil {
			_, cmd := m.helpScreen.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.state {
	case stateFontSize:
		return m.updateFontSize(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m.updateSettings(msg)
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit
	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)
	case ShowFontSizeMsg:
		m.fontSizeForm = NewDialog("Font size", NewFontSizeForm(m.frame.FontSize), m.devMode)
		m.state = stateFontSize
		return m, m.fontSizeForm.Init()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit.Binding) {
			return m, tea.Quit
		}
		switch {
		case m.frame.ColorPicker.Open:
			return m, m.updateColorPicker(msg)
		case m.frame.ThemePicker:
			return m, m.updateThemePicker(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	switch {
	case key.Matches(msg, m.keys.Application.Quit.Binding):
		return m, func() tea.Msg { return QuitMsg{} }
	case key.Matches(msg, m.keys.Application.Help.Binding):
		return m, func() tea.Msg { return ShowHelpMsg{} }
	case key.Matches(msg, m.keys.Navigation.Up.Binding):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Navigation.Down.Binding):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Navigation.Activate.Binding):
		return m, m.activate(rows[m.cursor])
	case key.Matches(msg, m.keys.Navigation.Decrease.Binding):
		return m, m.step(rows[m.cursor], -1)
	case key.Matches(msg, m.keys.Navigation.Increase.Binding):
		return m, m.step(rows[m.cursor], 1)
	case key.Matches(msg, m.keys.Theme.Fetch.Binding):
		return m, m.check(m.controller.RequestFetch())
	case key.Matches(msg, m.keys.Theme.Disable.Binding):
		return m, m.check(m.controller.RequestDisable())
	case key.Matches(msg, m.keys.Theme.ThemeMode.Binding):
		return m, m.openThemePicker()
	case key.Matches(msg, m.keys.Theme.FontSize.Binding):
		return m, func() tea.Msg { return ShowFontSizeMsg{} }
	case key.Matches(msg, m.keys.Theme.ToggleTemplate.Binding):
		m.templateOpen = !m.templateOpen
		m.clampCursor()
	}
	return m, nil
}

// activate runs the action of the focused row.
func (m *Model) activate(r row) tea.Cmd {
	switch r.kind {
	case rowFetch:
		return m.check(m.controller.RequestFetch())
	case rowDisable:
		return m.check(m.controller.RequestDisable())
	case rowThemeMode:
		return m.openThemePicker()
	case rowPaletteRole:
		m.pickerCursor = max(m.paletteIndex(r.name), 0)
		return m.check(m.controller.OpenColorPicker(r.name))
	case rowPaletteSave:
		return m.check(m.controller.RequestPaletteTemplateSet())
	case rowPaletteReset:
		return m.check(m.controller.RequestPaletteTemplateReset())
	case rowUsePalette:
		return m.check(m.controller.RequestUsePaletteAsTemplate())
	case rowTemplateToggle:
		m.templateOpen = !m.templateOpen
		m.clampCursor()
	case rowThemeKey:
		return m.step(r, 1)
	case rowThemeSave:
		return m.check(m.controller.RequestThemeTemplateSet())
	case rowThemeReset:
		return m.check(m.controller.RequestThemeTemplateReset())
	case rowOption:
		return m.check(m.controller.ToggleOption(r.name))
	case rowFontSize:
		return func() tea.Msg { return ShowFontSizeMsg{} }
	}
	return nil
}

// step changes the value of the focused row by delta.
func (m *Model) step(r row, delta int) tea.Cmd {
	switch r.kind {
	case rowPaletteRole:
		return m.check(m.controller.EditPaletteIndex(r.name, stepIndex(m.paletteIndex(r.name), delta)))
	case rowThemeKey:
		for _, k := range m.frame.ThemeTemplate {
			if k.Key == r.name {
				return m.check(m.controller.EditThemeKey(r.name, stepRole(k.Role, delta)))
			}
		}
	case rowFontSize:
		size := m.frame.FontSize
		if size == domain.DefaultFontSize {
			size = domain.MinFontSize - delta
		}
		return m.check(m.controller.RequestFontSizeSet(size + delta))
	case rowOption:
		return m.check(m.controller.ToggleOption(r.name))
	}
	return nil
}

func (m *Model) updateColorPicker(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Navigation.Close.Binding):
		m.controller.CloseDialog()
	case key.Matches(msg, m.keys.Navigation.Decrease.Binding):
		m.pickerCursor = stepIndex(m.pickerCursor, -1)
	case key.Matches(msg, m.keys.Navigation.Increase.Binding):
		m.pickerCursor = stepIndex(m.pickerCursor, 1)
	case key.Matches(msg, m.keys.Navigation.Up.Binding):
		m.pickerCursor = stepIndex(m.pickerCursor, -pickerColumns)
	case key.Matches(msg, m.keys.Navigation.Down.Binding):
		m.pickerCursor = stepIndex(m.pickerCursor, pickerColumns)
	case key.Matches(msg, m.keys.Navigation.Activate.Binding):
		return m.check(m.controller.PickColor(m.pickerCursor))
	}
	return nil
}

func (m *Model) updateThemePicker(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Navigation.Close.Binding), key.Matches(msg, m.keys.Theme.ThemeMode.Binding):
		m.controller.CloseDialog()
	case key.Matches(msg, m.keys.Navigation.Up.Binding):
		if m.modeCursor > 0 {
			m.modeCursor--
		}
	case key.Matches(msg, m.keys.Navigation.Down.Binding):
		if m.modeCursor < len(m.frame.Modes)-1 {
			m.modeCursor++
		}
	case key.Matches(msg, m.keys.Navigation.Activate.Binding):
		if m.modeCursor < len(m.frame.Modes) {
			return m.check(m.controller.SelectThemeMode(m.frame.Modes[m.modeCursor].Mode))
		}
	}
	return nil
}

func (m *Model) openThemePicker() tea.Cmd {
	m.modeCursor = 0
	for i, mode := range m.frame.Modes {
		if mode.Selected {
			m.modeCursor = i
		}
	}
	return m.check(m.controller.OpenThemePicker())
}

func (m *Model) updateFontSize(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.fontSizeForm == nil {
		m.state = stateSettings
		return m, nil
	}
	_, cmd := m.fontSizeForm.Update(msg)
	form, ok := m.fontSizeForm.Content().(*FontSizeForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.fontSizeForm = nil
	m.state = stateSettings
	if result := form.Result(); !result.Cancelled {
		return m, m.check(m.controller.RequestFontSizeSet(result.Size))
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.helpScreen == nil {
		m.state = stateSettings
		return m, nil
	}
	_, cmd := m.helpScreen.Update(msg)
	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateSettings
		return m, nil
	}
	return m, cmd
}

// check surfaces err in the error line and schedules its removal.
func (m *Model) check(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return m.errorManager.SetError(err)
}

func (m *Model) rows() []row {
	return buildRows(m.frame, m.templateOpen)
}

func (m *Model) clampCursor() {
	if n := len(m.rows()); m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m *Model) paletteIndex(role string) int {
	i := slices.IndexFunc(m.frame.Palette, func(p view.ColorPreview) bool { return p.Role == role })
	if i < 0 {
		return -1
	}
	return m.frame.Palette[i].Index
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateFontSize:
		if m.fontSizeForm != nil {
			return m.fontSizeForm.View()
		}
	}

	page := m.renderPage(m.frame, m.rows()) + "\n" + m.footer()
	if !m.elements.IsShown(ports.ElementOverlay) {
		return page
	}

	var box string
	switch {
	case m.elements.IsShown(ports.DialogElement(string(dialog.ColorPicker))):
		box = renderColorPicker(m.frame.ColorPicker, m.pickerCursor)
	case m.elements.IsShown(ports.DialogElement(string(dialog.ThemePicker))):
		box = m.renderThemePicker(m.frame.Modes)
	default:
		return page
	}
	return compositeOverlay(page, box, m.width, m.height)
}

// footer is two lines: the last error, or a rotating tip and the short help.
func (m *Model) footer() string {
	if m.errorManager.HasError() {
		return theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), max(m.width, 40)))
	}
	var lines []string
	if all := GetTips(); len(all) > 0 {
		lines = append(lines, RenderTip(all[(m.ticks/tipRotationTicks)%len(all)]))
	}
	lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	return strings.Join(lines, "\n")
}
