package dialog

import "pywalfox/internal/ports"

// Kind identifies one of the settings dialogs.
type Kind string

const (
	// ColorPicker edits the palette index of a role. Its target is the role name.
	ColorPicker Kind = "colorpicker"
	// ThemePicker selects the theme mode.
	ThemePicker Kind = "themepicker"
)

// ThemeButton is the target used when the theme picker is opened from its button.
const ThemeButton = "theme-select"

// SettingsSession is the session type of the settings surface.
type SettingsSession = Session[Kind, string]

// NewSettingsCoordinator returns a coordinator with the settings dialogs registered.
func NewSettingsCoordinator(surface ports.Surface) *Coordinator[Kind, string] {
	c := NewCoordinator[Kind, string](surface)
	c.Register(ColorPicker, ports.DialogElement(string(ColorPicker)), true)
	c.Register(ThemePicker, ports.DialogElement(string(ThemePicker)), false)
	return c
}
