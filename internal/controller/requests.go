package controller

import (
	"fmt"

	"pywalfox/internal/dialog"
	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
)

// RequestInitialData asks the background for the full snapshot.
func (c *Controller) RequestInitialData() error {
	return c.send(messaging.GetInitialData{})
}

// RequestFetch asks the helper for a fresh palette.
func (c *Controller) RequestFetch() error {
	return c.send(messaging.Fetch{})
}

// RequestDisable turns theming off. The palette is cleared right away.
func (c *Controller) RequestDisable() error {
	if err := c.send(messaging.Disable{}); err != nil {
		return err
	}
	c.state.Colors = nil
	c.state.Enabled = false
	c.render()
	return nil
}

// RequestOptionSet toggles option. Options handled by the helper show a
// loading marker until their confirmation arrives.
func (c *Controller) RequestOptionSet(option string, enabled bool) error {
	async := domain.AsyncOptions[option]
	if async {
		c.state.Options.MarkLoading(option)
	}
	err := c.send(messaging.SetOption{Enabled: enabled, Option: option})
	if err != nil && async {
		c.state.Options.Fail(option)
	}
	c.render()
	return err
}

// ToggleOption flips option relative to its rendered state.
func (c *Controller) ToggleOption(option string) error {
	status := c.state.Options.Get(option)
	if status.Loading {
		return nil
	}
	return c.RequestOptionSet(option, !status.Enabled)
}

// RequestPaletteTemplateSet saves the palette mapping currently being edited.
func (c *Controller) RequestPaletteTemplateSet() error {
	return c.send(messaging.SetPaletteTemplate{Palette: c.state.Template.Palette.Clone()})
}

// RequestPaletteTemplateReset asks for the default palette mapping.
func (c *Controller) RequestPaletteTemplateReset() error {
	return c.send(messaging.ResetPaletteTemplate{})
}

// RequestThemeTemplateSet saves the browser mapping currently being edited.
func (c *Controller) RequestThemeTemplateSet() error {
	return c.send(messaging.SetThemeTemplate{Browser: c.state.Template.Browser.Clone()})
}

// RequestThemeTemplateReset asks for the default browser mapping.
func (c *Controller) RequestThemeTemplateReset() error {
	return c.send(messaging.ResetThemeTemplate{})
}

// RequestThemeModeSet persists mode without touching the selector.
func (c *Controller) RequestThemeModeSet(mode domain.ThemeMode) error {
	if _, err := domain.ParseThemeMode(string(mode)); err != nil {
		return err
	}
	return c.send(messaging.SetThemeMode{Mode: mode})
}

// RequestFontSizeSet sends a new font size. Sizes outside the accepted range
// are dropped with a log line.
func (c *Controller) RequestFontSizeSet(size int) error {
	if size < domain.MinFontSize || size > domain.MaxFontSize {
		logging.Logger.Info("Ignoring invalid font size", "size", size)
		return nil
	}
	return c.send(messaging.SetFontSize{Size: size})
}

// RequestUsePaletteAsTemplate sends the placeholder intent. Nothing changes locally.
func (c *Controller) RequestUsePaletteAsTemplate() error {
	return c.send(messaging.UsePaletteAsTemplate{})
}

// EditPaletteIndex changes the in-memory index of role. It is saved by
// RequestPaletteTemplateSet.
func (c *Controller) EditPaletteIndex(role string, index int) error {
	changed, err := c.state.Template.SetPalette(map[string]int{role: index})
	if err != nil {
		logging.Logger.Warn("Rejected palette edit", "role", role, "index", index, "error", err)
		return err
	}
	if len(changed) > 0 {
		c.render()
	}
	return nil
}

// EditThemeKey maps browser theme key to role in memory.
func (c *Controller) EditThemeKey(key, role string) error {
	if !domain.IsKnownRole(role) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownRole, role)
	}
	browser := c.state.Template.Browser.Clone()
	browser[key] = role
	c.state.Template.SetBrowserMapping(browser)
	c.render()
	return nil
}

// OpenColorPicker toggles the color picker for role.
func (c *Controller) OpenColorPicker(role string) error {
	if !domain.IsKnownRole(role) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownRole, role)
	}
	if _, err := c.dialogs.Request(dialog.ColorPicker, role); err != nil {
		return err
	}
	c.render()
	return nil
}

// PickColor assigns index to the role the color picker is open for.
func (c *Controller) PickColor(index int) error {
	session := c.dialogs.Session()
	if !session.Open || session.ID != dialog.ColorPicker {
		return ErrNoColorTarget
	}
	return c.EditPaletteIndex(session.Target, index)
}

// OpenThemePicker toggles the theme mode picker.
func (c *Controller) OpenThemePicker() error {
	if _, err := c.dialogs.Request(dialog.ThemePicker, dialog.ThemeButton); err != nil {
		return err
	}
	c.render()
	return nil
}

// SelectThemeMode is a click on a mode button.
func (c *Controller) SelectThemeMode(mode domain.ThemeMode) error {
	if _, err := domain.ParseThemeMode(string(mode)); err != nil {
		return err
	}
	c.selectMode(mode)
	c.render()
	return c.send(messaging.SetThemeMode{Mode: mode})
}

// CloseDialog closes whatever dialog is open.
func (c *Controller) CloseDialog() {
	c.dialogs.Close()
	c.render()
}

// SystemThemeChanged follows the OS dark-theme signal while no palette is loaded.
func (c *Controller) SystemThemeChanged(prefersDark bool) {
	if c.state.Colors != nil {
		return
	}
	c.selectMode(domain.ModeFromSystem(prefersDark))
	c.render()
}
