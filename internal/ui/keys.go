package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"pywalfox/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Quit      KeyWithTip
}

// NavigationKeys moves the focus and changes values of the focused control
type NavigationKeys struct {
	Activate KeyWithTip
	Close    KeyWithTip
	Decrease KeyWithTip
	Down     KeyWithTip
	Increase KeyWithTip
	Up       KeyWithTip
}

// ThemeKeys are global shortcuts for theme actions
type ThemeKeys struct {
	Disable        KeyWithTip
	Fetch          KeyWithTip
	FontSize       KeyWithTip
	ThemeMode      KeyWithTip
	ToggleTemplate KeyWithTip
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Theme       ThemeKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit", defaults, customKeys),
			Help:      buildBinding("help", defaults, customKeys),
			Quit:      buildBinding("quit", defaults, customKeys),
		},
		Navigation: NavigationKeys{
			Activate: buildBinding("activate", defaults, customKeys),
			Close:    buildBinding("close", defaults, customKeys),
			Decrease: buildBinding("decrease", defaults, customKeys),
			Down:     buildBinding("down", defaults, customKeys),
			Increase: buildBinding("increase", defaults, customKeys),
			Up:       buildBinding("up", defaults, customKeys),
		},
		Theme: ThemeKeys{
			Disable:        buildBinding("disable", defaults, customKeys),
			Fetch:          buildBinding("fetch", defaults, customKeys),
			FontSize:       buildBinding("font_size", defaults, customKeys),
			ThemeMode:      buildBinding("theme_mode", defaults, customKeys),
			ToggleTemplate: buildBinding("toggle_template", defaults, customKeys),
		},
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Activate.Binding,
		k.Theme.Fetch.Binding,
		k.Theme.ThemeMode.Binding,
		k.Theme.FontSize.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}
	helpKeys := strings.Join(displayKeys(keys), "/")

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys, def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = newTip(def.TipFormat, displayKeys(keys)[0])
	}

	return result
}

func displayKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}
