package messaging

import (
	"encoding/json"
	"errors"
	"fmt"

	"pywalfox/internal/domain"
)

// Source identifies which stream a notification arrived on.
type Source int

const (
	SourceRuntime Source = iota
	SourceHelper
)

func (s Source) String() string {
	if s == SourceHelper {
		return "helper"
	}
	return "runtime"
}

// Notification is an inbound message. The set of implementations is closed.
type Notification interface {
	notification()
}

// Event is a decoded notification together with its routing metadata.
type Event struct {
	CorrelationID uint64
	Notification  Notification
	Source        Source
}

type (
	DebuggingInfoSet struct{ Info domain.DebuggingInfo }
	DebuggingOutput  struct{ Line string }
	FontSizeSet      struct{ Size int }
	InitialDataSet   struct{ Data domain.InitialData }
	OptionSet        struct {
		Enabled bool
		Option  string
	}
	PaletteTemplateSet struct{ Palette domain.PaletteTemplate }
	PywalColorsSet     struct{ Colors domain.PaletteColors }
	TemplateSet        struct{ Template domain.Template }
	ThemeModeSet       struct{ Mode domain.ThemeMode }
	ThemeTemplateSet   struct{ Browser domain.ThemeTemplate }

	// RequestFailed reports that the background could not carry out a request.
	// Option is set when the failed request targeted an option control.
	RequestFailed struct {
		Action string `json:"action"`
		Error  string `json:"error"`
		Option string `json:"option,omitempty"`
	}
)

// Helper lifecycle notifications. These are steady-state signals, not errors.
type (
	HelperConnected    struct{}
	HelperDisconnected struct{ Reason string }
	HelperUpdateNeeded struct{ Minimum, Version string }
	HelperVersion      struct{ Version string }
)

func (DebuggingInfoSet) notification()   {}
func (DebuggingOutput) notification()    {}
func (FontSizeSet) notification()        {}
func (InitialDataSet) notification()     {}
func (OptionSet) notification()          {}
func (PaletteTemplateSet) notification() {}
func (PywalColorsSet) notification()     {}
func (RequestFailed) notification()      {}
func (TemplateSet) notification()        {}
func (ThemeModeSet) notification()       {}
func (ThemeTemplateSet) notification()   {}
func (HelperConnected) notification()    {}
func (HelperDisconnected) notification() {}
func (HelperUpdateNeeded) notification() {}
func (HelperVersion) notification()      {}

// Decode turns a runtime envelope into a typed Event.
func Decode(env Envelope) (Event, error) {
	evt := Event{CorrelationID: env.CorrelationID, Source: SourceRuntime}

	var err error
	switch env.Action {
	case ActionInitialDataSet:
		var n InitialDataSet
		err = unmarshalData(env, &n.Data)
		evt.Notification = n
	case ActionPywalColorsSet:
		var n PywalColorsSet
		err = unmarshalData(env, &n.Colors)
		evt.Notification = n
	case ActionTemplateSet:
		var n TemplateSet
		err = unmarshalData(env, &n.Template)
		evt.Notification = n
	case ActionPaletteTemplateSet:
		var n PaletteTemplateSet
		err = unmarshalData(env, &n.Palette)
		evt.Notification = n
	case ActionThemeTemplateSet:
		var n ThemeTemplateSet
		err = unmarshalData(env, &n.Browser)
		evt.Notification = n
	case ActionThemeModeSet:
		var raw string
		err = unmarshalData(env, &raw)
		if err == nil {
			var mode domain.ThemeMode
			mode, err = domain.ParseThemeMode(raw)
			evt.Notification = ThemeModeSet{Mode: mode}
		}
	case ActionOptionSet:
		var data domain.OptionData
		err = unmarshalData(env, &data)
		evt.Notification = OptionSet{Enabled: data.Enabled, Option: data.Option}
	case ActionDebuggingOutput:
		var n DebuggingOutput
		err = unmarshalData(env, &n.Line)
		evt.Notification = n
	case ActionDebuggingInfoSet:
		var n DebuggingInfoSet
		err = unmarshalData(env, &n.Info)
		evt.Notification = n
	case ActionFontSizeSet:
		var n FontSizeSet
		err = unmarshalData(env, &n.Size)
		evt.Notification = n
	case ActionRequestFailed:
		var n RequestFailed
		err = unmarshalData(env, &n)
		evt.Notification = n
	default:
		return Event{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, env.Action)
	}

	if err != nil {
		return Event{}, fmt.Errorf("decode %s: %w", env.Action, err)
	}
	return evt, nil
}

// EncodeNotification builds the runtime envelope for a notification. Helper lifecycle
// notifications travel on the helper stream and cannot be encoded.
func EncodeNotification(n Notification, correlationID uint64) (Envelope, error) {
	switch n := n.(type) {
	case InitialDataSet:
		return newEnvelope(ActionInitialDataSet, correlationID, n.Data)
	case PywalColorsSet:
		return newEnvelope(ActionPywalColorsSet, correlationID, n.Colors)
	case TemplateSet:
		return newEnvelope(ActionTemplateSet, correlationID, n.Template)
	case PaletteTemplateSet:
		return newEnvelope(ActionPaletteTemplateSet, correlationID, n.Palette)
	case ThemeTemplateSet:
		return newEnvelope(ActionThemeTemplateSet, correlationID, n.Browser)
	case ThemeModeSet:
		return newEnvelope(ActionThemeModeSet, correlationID, n.Mode)
	case OptionSet:
		return newEnvelope(ActionOptionSet, correlationID, domain.OptionData{Enabled: n.Enabled, Option: n.Option})
	case DebuggingOutput:
		return newEnvelope(ActionDebuggingOutput, correlationID, n.Line)
	case DebuggingInfoSet:
		return newEnvelope(ActionDebuggingInfoSet, correlationID, n.Info)
	case FontSizeSet:
		return newEnvelope(ActionFontSizeSet, correlationID, n.Size)
	case RequestFailed:
		return newEnvelope(ActionRequestFailed, correlationID, n)
	}
	return Envelope{}, fmt.Errorf("%w: %T is not a runtime notification", domain.ErrUnknownAction, n)
}

var errMissingData = errors.New("missing data")

func unmarshalData(env Envelope, v any) error {
	if len(env.Data) == 0 {
		return errMissingData
	}
	return json.Unmarshal(env.Data, v)
}
