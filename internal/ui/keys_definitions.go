package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults, help text, and tips.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},

	// Navigation keys
	{Name: "activate", Defaults: []string{"enter", " "}, Help: "activate focused control"},
	{Name: "close", Defaults: []string{"esc"}, Help: "close dialog", TipFormat: "press %s to close an open picker"},
	{Name: "decrease", Defaults: []string{"left", "-"}, Help: "previous value"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next control"},
	{Name: "increase", Defaults: []string{"right", "+"}, Help: "next value", TipFormat: "press %s on a palette row to step through colors"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous control"},

	// Theme keys
	{Name: "disable", Defaults: []string{"d"}, Help: "disable theme", TipFormat: "press %s to go back to the default browser theme"},
	{Name: "fetch", Defaults: []string{"r"}, Help: "fetch pywal colors", TipFormat: "press %s to refetch the pywal palette"},
	{Name: "font_size", Defaults: []string{"f"}, Help: "set font size", TipFormat: "press %s to change the browser font size"},
	{Name: "theme_mode", Defaults: []string{"t"}, Help: "choose theme mode", TipFormat: "press %s to switch between dark, light and auto"},
	{Name: "toggle_template", Defaults: []string{"e"}, Help: "show/hide theme template", TipFormat: "press %s to edit which role each browser element uses"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
