package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pywalfox/internal/domain"
	"pywalfox/internal/ports"
	"pywalfox/internal/theme"
	"pywalfox/internal/view"
)

const (
	pickerColumns  = 8
	visibleLogRows = 6
)

// renderPage draws the settings page for f with the row at cursor focused.
func (m *Model) renderPage(f view.Frame, rows []row) string {
	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString(renderStatus(f) + "\n")

	section := ""
	for i, r := range rows {
		if s := sectionFor(r.kind); s != section {
			section = s
			b.WriteString("\n" + theme.SectionStyle.Render(section) + "\n")
		}
		line := m.renderRow(f, r)
		if i == m.cursor {
			line = theme.FocusedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + theme.SectionStyle.Render("Debugging") + "\n")
	b.WriteString(renderLog(f.Log, f.LogDropped))
	return b.String()
}

func sectionFor(kind rowKind) string {
	switch kind {
	case rowFetch, rowDisable, rowThemeMode:
		return "Theme"
	case rowPaletteRole, rowPaletteSave, rowPaletteReset, rowUsePalette:
		return "Palette template"
	case rowTemplateToggle, rowThemeKey, rowThemeSave, rowThemeReset:
		return "Theme template"
	case rowOption:
		return "Options"
	}
	return "Font"
}

func renderStatus(f view.Frame) string {
	status := theme.DisconnectedStyle.Render(f.Debugging.Connection)
	if f.Debugging.Connection == "Connected" {
		status = theme.ConnectedStyle.Render(f.Debugging.Connection)
	}
	line := status + theme.MutedStyle.Render(" · "+f.Debugging.Version)
	if f.Enabled {
		line += theme.MutedStyle.Render(" · ") + theme.SelectedStyle.Render("theme enabled")
	}
	if f.UpdateNeeded != "" {
		line += "\n" + theme.WarningStyle.Render(fmt.Sprintf("Helper update needed: version %s or newer is required", f.UpdateNeeded))
	}
	return line
}

func (m *Model) renderRow(f view.Frame, r row) string {
	switch r.kind {
	case rowFetch:
		return theme.NormalStyle.Render("Fetch pywal colors")
	case rowDisable:
		return theme.NormalStyle.Render("Disable theme")
	case rowThemeMode:
		return theme.LabelStyle.Render("Theme mode") + theme.NormalStyle.Render(modeIcon(f.ThemeButton.Icon)+" "+f.ThemeButton.Text)
	case rowPaletteRole:
		return renderPaletteRow(f, r.name)
	case rowPaletteSave:
		return theme.NormalStyle.Render("Save palette template")
	case rowPaletteReset:
		return theme.NormalStyle.Render("Reset palette template")
	case rowUsePalette:
		return theme.MutedStyle.Render("Use current palette as template")
	case rowTemplateToggle:
		marker := "▸"
		if m.templateOpen {
			marker = "▾"
		}
		return theme.NormalStyle.Render(marker + " Browser theme keys")
	case rowThemeKey:
		return renderThemeKeyRow(f, r.name)
	case rowThemeSave:
		return theme.NormalStyle.Render("Save theme template")
	case rowThemeReset:
		return theme.NormalStyle.Render("Reset theme template")
	case rowOption:
		return m.renderOptionRow(f, r.name)
	case rowFontSize:
		size := "browser default"
		if f.FontSize != domain.DefaultFontSize {
			size = strconv.Itoa(f.FontSize) + "px"
		}
		return theme.LabelStyle.Render("Font size") + theme.NormalStyle.Render(size)
	}
	return ""
}

func renderPaletteRow(f view.Frame, role string) string {
	for _, p := range f.Palette {
		if p.Role != role {
			continue
		}
		index := "-"
		if p.Index >= 0 {
			index = strconv.Itoa(p.Index)
		}
		swatch := theme.Swatch(p.Color, fmt.Sprintf(" %-7s ", p.Color))
		if !p.Valid {
			swatch = theme.Swatch("", " ------- ")
		}
		return theme.LabelStyle.Render(role) + theme.NormalStyle.Render(fmt.Sprintf("%3s ", index)) + swatch
	}
	return theme.LabelStyle.Render(role)
}

func renderThemeKeyRow(f view.Frame, key string) string {
	for _, k := range f.ThemeTemplate {
		if k.Key != key {
			continue
		}
		return theme.LabelStyle.Render(key) +
			theme.NormalStyle.Render(fmt.Sprintf("%-16s ", k.Role)) +
			theme.Swatch(k.Color, "  ")
	}
	return theme.LabelStyle.Render(key)
}

func (m *Model) renderOptionRow(f view.Frame, name string) string {
	for _, o := range f.Options {
		if o.Name != name {
			continue
		}
		value := theme.NormalStyle.Render(o.Label)
		switch {
		case o.Loading:
			value = theme.LoadingStyle.Render("…")
		case m.elements.IsSelected(ports.OptionElement(name)):
			value = theme.SelectedStyle.Render("✓ " + o.Label)
		}
		return theme.LabelStyle.Render(optionLabel(name)) + value
	}
	return theme.LabelStyle.Render(optionLabel(name))
}

func optionLabel(name string) string {
	switch name {
	case domain.OptionDuckDuckGo:
		return "Theme DuckDuckGo"
	case domain.OptionUserChrome:
		return "Custom userChrome.css"
	case domain.OptionUserContent:
		return "Custom userContent.css"
	}
	return name
}

func modeIcon(icon string) string {
	switch icon {
	case "moon":
		return "☾"
	case "sun":
		return "☀"
	case "auto":
		return "◐"
	}
	return "·"
}

func renderLog(lines []string, dropped int) string {
	if len(lines) == 0 {
		return theme.MutedStyle.Render("  no output yet") + "\n"
	}
	start := max(len(lines)-visibleLogRows, 0)
	var b strings.Builder
	if dropped > 0 {
		b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  %d older lines dropped", dropped)) + "\n")
	}
	for _, line := range lines[start:] {
		b.WriteString(theme.LogStyle.Render("  "+line) + "\n")
	}
	return b.String()
}

// renderColorPicker draws the 16 pywal colors with the cursor and the
// target's current index marked.
func renderColorPicker(p view.ColorPickerView, cursor int) string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Color for "+p.Target) + "\n\n")
	if len(p.Palette) == 0 {
		b.WriteString(theme.MutedStyle.Render("Fetch pywal colors to pick from the palette"))
		return theme.DialogBoxStyle.Render(b.String())
	}

	var grid []string
	for start := 0; start < len(p.Palette); start += pickerColumns {
		var cells []string
		for i := start; i < min(start+pickerColumns, len(p.Palette)); i++ {
			label := fmt.Sprintf(" %2d ", i)
			if i == p.Selected {
				label = fmt.Sprintf("✓%2d ", i)
			}
			cell := theme.Swatch(p.Palette[i], label)
			if i == cursor {
				cell = lipgloss.NewStyle().Underline(true).Render(cell)
			}
			cells = append(cells, cell)
		}
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, grid...))
	if cursor >= 0 && cursor < len(p.Palette) {
		b.WriteString("\n\n" + theme.MutedStyle.Render(p.Palette[cursor]))
	}
	return theme.DialogBoxStyle.Render(b.String())
}

// renderThemePicker draws the mode buttons. Selection markers come from the
// surface, which the controller keeps in sync with the active mode.
func (m *Model) renderThemePicker(modes []view.ModeButton) string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Theme mode") + "\n\n")
	for i, mode := range modes {
		line := modeIcon(mode.Label.Icon) + " " + mode.Label.Text
		if m.elements.IsSelected(ports.ModeElement(mode.Mode)) {
			line = theme.SelectedStyle.Render(line + " ✓")
		}
		if i == m.modeCursor {
			line = theme.FocusedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return theme.DialogBoxStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}
