package messaging

import (
	"fmt"

	"pywalfox/internal/domain"
)

// Intent is an outbound, fire-and-forget request. The set of implementations is closed.
type Intent interface {
	Action() string
	intent()
}

type (
	Disable              struct{}
	Fetch                struct{}
	GetInitialData       struct{}
	ResetPaletteTemplate struct{}
	ResetThemeTemplate   struct{}
	SetFontSize          struct{ Size int }
	SetOption            struct {
		Enabled bool
		Option  string
	}
	SetPaletteTemplate struct{ Palette domain.PaletteTemplate }
	SetThemeMode       struct{ Mode domain.ThemeMode }
	SetThemeTemplate   struct{ Browser domain.ThemeTemplate }

	// UsePaletteAsTemplate is defined but has no agreed behaviour yet; the
	// background acknowledges and ignores it.
	UsePaletteAsTemplate struct{}
)

func (Disable) Action() string              { return ActionDisable }
func (Fetch) Action() string                { return ActionFetch }
func (GetInitialData) Action() string       { return ActionGetInitialData }
func (ResetPaletteTemplate) Action() string { return ActionResetPaletteTemplate }
func (ResetThemeTemplate) Action() string   { return ActionResetThemeTemplate }
func (SetFontSize) Action() string          { return ActionSetFontSize }
func (SetOption) Action() string            { return ActionSetOption }
func (SetPaletteTemplate) Action() string   { return ActionSetPaletteTemplate }
func (SetThemeMode) Action() string         { return ActionSetThemeMode }
func (SetThemeTemplate) Action() string     { return ActionSetThemeTemplate }
func (UsePaletteAsTemplate) Action() string { return ActionUsePaletteAsTemplate }

func (Disable) intent()              {}
func (Fetch) intent()                {}
func (GetInitialData) intent()       {}
func (ResetPaletteTemplate) intent() {}
func (ResetThemeTemplate) intent()   {}
func (SetFontSize) intent()          {}
func (SetOption) intent()            {}
func (SetPaletteTemplate) intent()   {}
func (SetThemeMode) intent()         {}
func (SetThemeTemplate) intent()     {}
func (UsePaletteAsTemplate) intent() {}

// EncodeIntent builds the envelope for an intent tagged with correlationID.
func EncodeIntent(in Intent, correlationID uint64) (Envelope, error) {
	switch in := in.(type) {
	case SetFontSize:
		return newEnvelope(in.Action(), correlationID, in.Size)
	case SetOption:
		return newEnvelope(in.Action(), correlationID, domain.OptionData{Enabled: in.Enabled, Option: in.Option})
	case SetPaletteTemplate:
		return newEnvelope(in.Action(), correlationID, in.Palette)
	case SetThemeMode:
		return newEnvelope(in.Action(), correlationID, in.Mode)
	case SetThemeTemplate:
		return newEnvelope(in.Action(), correlationID, in.Browser)
	case nil:
		return Envelope{}, fmt.Errorf("%w: nil intent", domain.ErrUnknownAction)
	}
	return newEnvelope(in.Action(), correlationID, nil)
}

// DecodeIntent is the inverse of EncodeIntent, used by the receiving side.
func DecodeIntent(env Envelope) (Intent, error) {
	var (
		in  Intent
		err error
	)
	switch env.Action {
	case ActionDisable:
		in = Disable{}
	case ActionFetch:
		in = Fetch{}
	case ActionGetInitialData:
		in = GetInitialData{}
	case ActionResetPaletteTemplate:
		in = ResetPaletteTemplate{}
	case ActionResetThemeTemplate:
		in = ResetThemeTemplate{}
	case ActionUsePaletteAsTemplate:
		in = UsePaletteAsTemplate{}
	case ActionSetFontSize:
		var v SetFontSize
		err = unmarshalData(env, &v.Size)
		in = v
	case ActionSetOption:
		var data domain.OptionData
		err = unmarshalData(env, &data)
		in = SetOption{Enabled: data.Enabled, Option: data.Option}
	case ActionSetPaletteTemplate:
		var v SetPaletteTemplate
		err = unmarshalData(env, &v.Palette)
		in = v
	case ActionSetThemeMode:
		var raw string
		err = unmarshalData(env, &raw)
		if err == nil {
			var mode domain.ThemeMode
			mode, err = domain.ParseThemeMode(raw)
			in = SetThemeMode{Mode: mode}
		}
	case ActionSetThemeTemplate:
		var v SetThemeTemplate
		err = unmarshalData(env, &v.Browser)
		in = v
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, env.Action)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.Action, err)
	}
	return in, nil
}
