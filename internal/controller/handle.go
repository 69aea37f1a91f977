package controller

import (
	"fmt"

	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
	"pywalfox/internal/ports"
)

// Handle applies one inbound event and renders the result once.
func (c *Controller) Handle(evt messaging.Event) {
	var resolved *messaging.PendingRequest
	if evt.CorrelationID != 0 {
		if req, ok := c.pending.Resolve(evt.CorrelationID); ok {
			logging.Logger.Debug("Request resolved",
				"action", req.Intent.Action(),
				"correlation_id", req.ID,
			)
			resolved = &req
		}
	}

	switch n := evt.Notification.(type) {
	case messaging.InitialDataSet:
		c.hydrate(n.Data)
	case messaging.PywalColorsSet:
		colors := n.Colors
		c.state.Colors = &colors
		c.state.Enabled = true
	case messaging.TemplateSet:
		// Wholesale: a rejected palette leaves the browser map untouched too
		if err := c.replacePalette(n.Template.Palette); err == nil {
			c.state.Template.SetBrowserMapping(n.Template.Browser)
		}
	case messaging.PaletteTemplateSet:
		_ = c.replacePalette(n.Palette)
	case messaging.ThemeTemplateSet:
		c.state.Template.SetBrowserMapping(n.Browser)
	case messaging.ThemeModeSet:
		c.selectMode(n.Mode)
	case messaging.OptionSet:
		if resolved == nil {
			c.resolveOption(n.Option)
		}
		c.setOption(n.Option, n.Enabled)
	case messaging.DebuggingOutput:
		c.state.Log.Add(n.Line)
	case messaging.DebuggingInfoSet:
		c.state.Debugging = n.Info
	case messaging.FontSizeSet:
		c.state.FontSize = n.Size
	case messaging.RequestFailed:
		c.requestFailed(n, resolved)
	case messaging.HelperConnected:
		c.state.Debugging.Connected = true
		c.state.UpdateNeeded = ""
	case messaging.HelperDisconnected:
		c.state.Debugging.Connected = false
		c.state.Log.Add("Helper disconnected: " + n.Reason)
	case messaging.HelperUpdateNeeded:
		c.state.UpdateNeeded = n.Version
		c.state.Log.Add(fmt.Sprintf("Helper version %s is older than %s, update needed", n.Version, n.Minimum))
	case messaging.HelperVersion:
		c.state.Debugging.Version = n.Version
	default:
		logging.Logger.Warn("Unhandled notification", "type", fmt.Sprintf("%T", n))
		return
	}

	c.render()
}

// hydrate applies the initial snapshot as one state change. A template with an
// invalid palette is dropped whole; the rest of the snapshot still applies.
func (c *Controller) hydrate(data domain.InitialData) {
	if err := c.replacePalette(data.Template.Palette); err == nil {
		c.state.Template.SetBrowserMapping(data.Template.Browser)
	}

	c.state.Colors = nil
	if data.PywalColors != nil {
		colors := *data.PywalColors
		c.state.Colors = &colors
	}
	c.state.Debugging = data.DebuggingInfo
	c.state.Enabled = data.Enabled
	c.state.FontSize = data.FontSize

	for _, opt := range data.Options {
		c.setOption(opt.Option, opt.Enabled)
	}
	if data.Enabled && data.ThemeMode != "" {
		c.selectMode(data.ThemeMode)
	}
}

// replacePalette swaps the palette mapping, keeping the previous one when the
// new mapping is invalid.
func (c *Controller) replacePalette(palette domain.PaletteTemplate) error {
	if err := c.state.Template.ReplacePalette(palette); err != nil {
		logging.Logger.Error("Rejected palette template", "error", err)
		c.state.Log.Add("Rejected palette template: " + err.Error())
		return err
	}
	return nil
}

// setOption is the only path that clears an option's loading marker on success.
func (c *Controller) setOption(option string, enabled bool) {
	c.state.Options.Confirm(option, enabled)
	if enabled {
		c.surface.Select(ports.OptionElement(option))
	} else {
		c.surface.Deselect(ports.OptionElement(option))
	}
}

// resolveOption drops pending set-option requests for option when the
// confirmation carries no correlation id.
func (c *Controller) resolveOption(option string) {
	c.pending.ResolveWhere(func(req messaging.PendingRequest) bool {
		in, ok := req.Intent.(messaging.SetOption)
		return ok && in.Option == option
	})
}

func (c *Controller) requestFailed(n messaging.RequestFailed, resolved *messaging.PendingRequest) {
	option := n.Option
	if resolved != nil {
		if in, ok := resolved.Intent.(messaging.SetOption); ok && option == "" {
			option = in.Option
		}
	}
	if option != "" {
		c.state.Options.Fail(option)
		if resolved == nil {
			c.resolveOption(option)
		}
	}
	logging.Logger.Warn("Request failed", "action", n.Action, "option", option, "error", n.Error)
	c.state.Log.Add(fmt.Sprintf("%s failed: %s", n.Action, n.Error))
}

// selectMode marks mode as the only selected mode button.
func (c *Controller) selectMode(mode domain.ThemeMode) {
	if prev := c.state.ThemeMode; prev != "" && prev != mode {
		c.surface.Deselect(ports.ModeElement(prev))
	}
	c.surface.Select(ports.ModeElement(mode))
	c.state.ThemeMode = mode
}
