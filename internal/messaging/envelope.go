package messaging

import "encoding/json"

// Runtime notification actions.
const (
	ActionDebuggingInfoSet   = "debugging-info-set"
	ActionDebuggingOutput    = "debugging-output"
	ActionFontSizeSet        = "font-size-set"
	ActionInitialDataSet     = "initial-data-set"
	ActionOptionSet          = "option-set"
	ActionPaletteTemplateSet = "palette-template-set"
	ActionPywalColorsSet     = "pywal-colors-set"
	ActionRequestFailed      = "request-failed"
	ActionTemplateSet        = "template-set"
	ActionThemeModeSet       = "theme-mode-set"
	ActionThemeTemplateSet   = "theme-template-set"
)

// Outbound intent actions.
const (
	ActionDisable              = "disable"
	ActionFetch                = "fetch"
	ActionGetInitialData       = "get-initial-data"
	ActionResetPaletteTemplate = "reset-palette-template"
	ActionResetThemeTemplate   = "reset-theme-template"
	ActionSetFontSize          = "set-font-size"
	ActionSetOption            = "set-option"
	ActionSetPaletteTemplate   = "set-palette-template"
	ActionSetThemeMode         = "set-theme-mode"
	ActionSetThemeTemplate     = "set-theme-template"
	ActionUsePaletteAsTemplate = "use-palette-as-template"
)

// Envelope is the wire shape of every runtime message.
// CorrelationID is zero for notifications that do not answer a request.
type Envelope struct {
	Action        string          `json:"action"`
	CorrelationID uint64          `json:"correlationId,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
}

func newEnvelope(action string, id uint64, data any) (Envelope, error) {
	env := Envelope{Action: action, CorrelationID: id}
	if data == nil {
		return env, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	env.Data = raw
	return env, nil
}
