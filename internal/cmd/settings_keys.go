package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"pywalfox/internal/config"
	"pywalfox/internal/logging"
	"pywalfox/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts of the settings surface
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List key bindings in effect" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Drop a custom key binding"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Bind an action to one or more keys"`
}

// SettingsKeysListCmd lists key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd binds an action
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Action name (e.g., fetch, theme_mode, quit)"`
	Value string `arg:"" help:"Keys, comma-separated for more than one (e.g., r or up,k)"`
}

// SettingsKeysResetCmd restores the default binding of an action
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Action name"`
}

type keyBindingView struct {
	Action  string   `json:"action"`
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Keys    []string `json:"keys"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}

	views := make(map[string]keyBindingView)
	effective := effectiveBindings(custom)
	for _, name := range ui.GetValidKeyNames() {
		v := keyBindingView{Default: ui.GetDefaultKeyBindings()[name], Keys: effective[name]}
		if def := ui.GetKeyDefinition(name); def != nil {
			v.Action = def.Help
		}
		if len(custom[name]) > 0 {
			v.Custom = custom[name]
		}
		views[name] = v
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Key bindings (settings file: %s)\n\n", config.GetSettingsPath())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tKeys\tDefault\tAction")
	fmt.Fprintln(w, "────\t────\t───────\t──────")
	for _, name := range ui.GetValidKeyNames() {
		v := views[name]
		keys := strings.Join(v.Keys, ", ")
		if v.Custom != nil {
			keys += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, keys, strings.Join(v.Default, ", "), v.Action)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("* custom binding. Change one with 'pywalfox settings keys set <name> <keys>'.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[s.Key] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := checkBindingConflicts(effectiveBindings(settings.Keys), s.Key); err != nil {
		return err
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'", s.Key)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if _, ok := settings.Keys[s.Key]; !ok {
		fmt.Printf("'%s' already uses its default binding\n", s.Key)
		return nil
	}
	delete(settings.Keys, s.Key)

	// A default may collide with a key another action was moved to
	if err := checkBindingConflicts(effectiveBindings(settings.Keys), s.Key); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Reset '%s' to: %s\n", s.Key, strings.Join(ui.GetDefaultKeyBindings()[s.Key], ", "))
	return nil
}

// effectiveBindings overlays custom on the default bindings.
func effectiveBindings(custom config.KeyBindingsConfig) map[string][]string {
	out := make(map[string][]string)
	for name, keys := range ui.GetDefaultKeyBindings() {
		out[name] = keys
	}
	for name, keys := range custom {
		if len(keys) > 0 {
			out[name] = keys
		}
	}
	return out
}

// checkBindingConflicts reports a key of name that another action also uses.
func checkBindingConflicts(bindings map[string][]string, name string) error {
	others := make([]string, 0, len(bindings))
	for other := range bindings {
		if other != name {
			others = append(others, other)
		}
	}
	slices.Sort(others)

	for _, key := range bindings[name] {
		for _, other := range others {
			if slices.Contains(bindings[other], key) {
				return fmt.Errorf("conflict: key '%s' is already bound to '%s'", key, other)
			}
		}
	}
	return nil
}

func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
