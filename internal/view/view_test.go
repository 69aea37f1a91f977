package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pywalfox/internal/dialog"
	"pywalfox/internal/domain"
)

func testColors(t *testing.T) *domain.PaletteColors {
	t.Helper()
	raw := make([]string, domain.PaletteLength)
	for i := range raw {
		raw[i] = "#0000" + "0123456789abcdefgh"[i:i+1] + "0"
	}
	raw[16], raw[17] = "#101010", "#202020"
	colors, err := domain.NewPaletteColors(raw)
	require.NoError(t, err)
	return &colors
}

func TestProjectOption(t *testing.T) {
	assert.Equal(t, OptionButton{Label: "Yes", Name: "duckduckgo", Selected: true},
		ProjectOption("duckduckgo", domain.OptionStatus{Enabled: true}))
	assert.Equal(t, OptionButton{Label: "No", Loading: true, Name: "userChrome"},
		ProjectOption("userChrome", domain.OptionStatus{Loading: true}))
}

func TestProjectColorPreview(t *testing.T) {
	tmpl := domain.Template{Palette: domain.PaletteTemplate{domain.RoleAccentPrimary: 4}}
	colors := testColors(t)

	t.Run("resolved", func(t *testing.T) {
		got := ProjectColorPreview(domain.RoleAccentPrimary, tmpl, colors)
		assert.Equal(t, ColorPreview{Color: colors[4], Index: 4, Role: domain.RoleAccentPrimary, Valid: true}, got)
	})

	t.Run("unresolved role", func(t *testing.T) {
		got := ProjectColorPreview(domain.RoleText, tmpl, colors)
		assert.False(t, got.Valid)
		assert.Equal(t, -1, got.Index)
	})

	t.Run("no colors yet", func(t *testing.T) {
		got := ProjectColorPreview(domain.RoleAccentPrimary, tmpl, nil)
		assert.False(t, got.Valid)
		assert.Equal(t, 4, got.Index)
	})
}

func TestThemeModeLabel(t *testing.T) {
	tests := []struct {
		mode domain.ThemeMode
		want ModeLabel
	}{
		{domain.ThemeModeDark, ModeLabel{Icon: "moon", Text: "Dark mode"}},
		{domain.ThemeModeLight, ModeLabel{Icon: "sun", Text: "Light mode"}},
		{domain.ThemeModeAuto, ModeLabel{Icon: "auto", Text: "Auto mode"}},
	}
	for _, tt := range tests {
		got, ok := ThemeModeLabel(tt.mode)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}

	_, ok := ThemeModeLabel("")
	assert.False(t, ok)
}

func TestProjectDebuggingInfo(t *testing.T) {
	assert.Equal(t, DebugInfo{Connection: "Disconnected", Version: "version not set"},
		ProjectDebuggingInfo(domain.DebuggingInfo{}))
	assert.Equal(t, DebugInfo{Connection: "Disconnected", Version: "version not set"},
		ProjectDebuggingInfo(domain.DebuggingInfo{Version: "0"}))
	assert.Equal(t, DebugInfo{Connection: "Connected", Version: "version 2.7"},
		ProjectDebuggingInfo(domain.DebuggingInfo{Connected: true, Version: "2.7"}))
}

func TestProjectColorPicker(t *testing.T) {
	tmpl := domain.DefaultTemplate()
	colors := testColors(t)

	closed := ProjectColorPicker(dialog.SettingsSession{}, tmpl, colors)
	assert.False(t, closed.Open)
	assert.Len(t, closed.Palette, domain.PywalColorCount)
	assert.Equal(t, -1, closed.Selected)

	open := ProjectColorPicker(dialog.SettingsSession{ID: dialog.ColorPicker, Open: true, Target: domain.RoleForeground}, tmpl, nil)
	assert.True(t, open.Open)
	assert.Nil(t, open.Palette)
	assert.Equal(t, 15, open.Selected)
}

func TestProject(t *testing.T) {
	options := domain.OptionState{}
	options.MarkLoading(domain.OptionUserChrome)
	options.Confirm(domain.OptionDuckDuckGo, true)

	frame := Project(Snapshot{
		Colors:    testColors(t),
		Dialog:    dialog.SettingsSession{ID: dialog.ThemePicker, Open: true, Target: dialog.ThemeButton},
		Enabled:   true,
		Log:       []string{"hello"},
		Options:   options,
		Template:  domain.DefaultTemplate(),
		ThemeMode: domain.ThemeModeLight,
	})

	assert.True(t, frame.Overlay)
	assert.True(t, frame.ThemePicker)
	assert.False(t, frame.ColorPicker.Open)
	assert.Equal(t, ModeLabel{Icon: "sun", Text: "Light mode"}, frame.ThemeButton)
	assert.Equal(t, []string{"hello"}, frame.Log)

	selected := 0
	for _, m := range frame.Modes {
		if m.Selected {
			selected++
			assert.Equal(t, domain.ThemeModeLight, m.Mode)
		}
	}
	assert.Equal(t, 1, selected)

	require.Len(t, frame.Options, len(domain.Options))
	byName := map[string]OptionButton{}
	for _, o := range frame.Options {
		byName[o.Name] = o
	}
	assert.True(t, byName[domain.OptionUserChrome].Loading)
	assert.Equal(t, "Yes", byName[domain.OptionDuckDuckGo].Label)

	require.Len(t, frame.Palette, len(domain.Roles))
	for _, p := range frame.Palette {
		assert.True(t, p.Valid, p.Role)
	}
	assert.Len(t, frame.ThemeTemplate, len(domain.BrowserKeys))
}

func TestProject_NoModeChosen(t *testing.T) {
	frame := Project(Snapshot{Template: domain.DefaultTemplate()})

	assert.Equal(t, "Theme mode", frame.ThemeButton.Text)
	for _, m := range frame.Modes {
		assert.False(t, m.Selected)
	}
	assert.Equal(t, "Disconnected", frame.Debugging.Connection)
}
