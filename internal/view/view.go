// Package view turns controller state into render instructions. Every function
// here is pure: it reads its arguments and returns data.
package view

import (
	"strings"

	"pywalfox/internal/dialog"
	"pywalfox/internal/domain"
)

// Snapshot is the read-only state handed to Project.
type Snapshot struct {
	Colors       *domain.PaletteColors
	Debugging    domain.DebuggingInfo
	Dialog       dialog.SettingsSession
	Enabled      bool
	FontSize     int
	Log          []string
	LogDropped   int
	Options      domain.OptionState
	Template     domain.Template
	ThemeMode    domain.ThemeMode
	UpdateNeeded string
}

// OptionButton is the rendered state of an option toggle.
type OptionButton struct {
	Label    string
	Loading  bool
	Name     string
	Selected bool
}

// ColorPreview is the swatch shown next to a palette template input.
// Valid is false when no color can be shown.
type ColorPreview struct {
	Color string
	Index int
	Role  string
	Valid bool
}

// ModeLabel is the icon and text shown for a theme mode.
type ModeLabel struct {
	Icon string
	Text string
}

// ModeButton is one entry of the theme picker.
type ModeButton struct {
	Label    ModeLabel
	Mode     domain.ThemeMode
	Selected bool
}

// DebugInfo is the text of the debugging card.
type DebugInfo struct {
	Connection string
	Version    string
}

// ColorPickerView is the color picker dialog. Selected is -1 when the target
// role has no index.
type ColorPickerView struct {
	Open     bool
	Palette  []string
	Selected int
	Target   string
}

// ThemeKeyPreview is one browser theme key with its role and resolved color.
type ThemeKeyPreview struct {
	Color string
	Key   string
	Role  string
}

// Frame is everything the surface needs to draw one state.
type Frame struct {
	ColorPicker   ColorPickerView
	Debugging     DebugInfo
	Enabled       bool
	FontSize      int
	Log           []string
	LogDropped    int // lines evicted from the front of Log
	Modes         []ModeButton
	Options       []OptionButton
	Overlay       bool
	Palette       []ColorPreview
	ThemeButton   ModeLabel
	ThemePicker   bool
	ThemeTemplate []ThemeKeyPreview
	UpdateNeeded  string
}

// ProjectOption renders an option toggle.
func ProjectOption(name string, status domain.OptionStatus) OptionButton {
	label := "No"
	if status.Enabled {
		label = "Yes"
	}
	return OptionButton{
		Label:    label,
		Loading:  status.Loading,
		Name:     name,
		Selected: status.Enabled,
	}
}

// ProjectColorPreview resolves role through t into colors.
func ProjectColorPreview(role string, t domain.Template, colors *domain.PaletteColors) ColorPreview {
	preview := ColorPreview{Index: -1, Role: role}
	index, err := t.Resolve(role)
	if err != nil {
		return preview
	}
	preview.Index = index
	if colors == nil {
		return preview
	}
	color, err := colors.At(index)
	if err != nil {
		return preview
	}
	preview.Color = color
	preview.Valid = true
	return preview
}

// ThemeModeLabel returns the label for mode; ok is false for unknown modes.
func ThemeModeLabel(mode domain.ThemeMode) (label ModeLabel, ok bool) {
	switch mode {
	case domain.ThemeModeDark:
		return ModeLabel{Icon: "moon", Text: "Dark mode"}, true
	case domain.ThemeModeLight:
		return ModeLabel{Icon: "sun", Text: "Light mode"}, true
	case domain.ThemeModeAuto:
		return ModeLabel{Icon: "auto", Text: "Auto mode"}, true
	}
	return ModeLabel{}, false
}

// ProjectDebuggingInfo renders the connection status and helper version.
func ProjectDebuggingInfo(info domain.DebuggingInfo) DebugInfo {
	out := DebugInfo{Connection: "Disconnected", Version: "version not set"}
	if info.Connected {
		out.Connection = "Connected"
	}
	if v := strings.TrimSpace(info.Version); v != "" && v != "0" {
		out.Version = "version " + v
	}
	return out
}

// ProjectColorPicker renders the color picker for the current session.
func ProjectColorPicker(session dialog.SettingsSession, t domain.Template, colors *domain.PaletteColors) ColorPickerView {
	out := ColorPickerView{Selected: -1}
	if colors != nil {
		out.Palette = colors.Slice()[:domain.PywalColorCount]
	}
	if !session.Open || session.ID != dialog.ColorPicker {
		return out
	}
	out.Open = true
	out.Target = session.Target
	if index, err := t.Resolve(session.Target); err == nil {
		out.Selected = index
	}
	return out
}

// Project builds the full frame for s.
func Project(s Snapshot) Frame {
	f := Frame{
		ColorPicker:  ProjectColorPicker(s.Dialog, s.Template, s.Colors),
		Debugging:    ProjectDebuggingInfo(s.Debugging),
		Enabled:      s.Enabled,
		FontSize:     s.FontSize,
		Log:          s.Log,
		LogDropped:   s.LogDropped,
		Overlay:      s.Dialog.Open,
		ThemePicker:  s.Dialog.Open && s.Dialog.ID == dialog.ThemePicker,
		UpdateNeeded: s.UpdateNeeded,
	}

	if label, ok := ThemeModeLabel(s.ThemeMode); ok {
		f.ThemeButton = label
	} else {
		f.ThemeButton = ModeLabel{Text: "Theme mode"}
	}
	for _, mode := range domain.ThemeModes {
		label, _ := ThemeModeLabel(mode)
		f.Modes = append(f.Modes, ModeButton{Label: label, Mode: mode, Selected: mode == s.ThemeMode})
	}

	for _, name := range domain.Options {
		f.Options = append(f.Options, ProjectOption(name, s.Options.Get(name)))
	}

	for _, role := range domain.Roles {
		f.Palette = append(f.Palette, ProjectColorPreview(role, s.Template, s.Colors))
	}

	for _, key := range domain.BrowserKeys {
		role, ok := s.Template.Browser[key]
		if !ok {
			continue
		}
		row := ThemeKeyPreview{Key: key, Role: role}
		if preview := ProjectColorPreview(role, s.Template, s.Colors); preview.Valid {
			row.Color = preview.Color
		}
		f.ThemeTemplate = append(f.ThemeTemplate, row)
	}

	return f
}
