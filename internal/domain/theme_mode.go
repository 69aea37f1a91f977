package domain

import "fmt"

// ThemeMode selects which variant of the generated theme is applied.
type ThemeMode string

const (
	ThemeModeAuto  ThemeMode = "auto"
	ThemeModeDark  ThemeMode = "dark"
	ThemeModeLight ThemeMode = "light"
)

// ThemeModes lists the selectable modes in display order.
var ThemeModes = []ThemeMode{ThemeModeDark, ThemeModeLight, ThemeModeAuto}

// ParseThemeMode converts a raw string to a ThemeMode.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(s); m {
	case ThemeModeAuto, ThemeModeDark, ThemeModeLight:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidThemeMode, s)
}

// ModeFromSystem derives a mode from the OS/browser dark-theme signal. It is used
// only while no explicit choice has been made.
func ModeFromSystem(prefersDark bool) ThemeMode {
	if prefersDark {
		return ThemeModeDark
	}
	return ThemeModeLight
}
