package messaging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pywalfox/internal/domain"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
		want Notification
	}{
		{
			name: "theme mode",
			env:  Envelope{Action: ActionThemeModeSet, Data: json.RawMessage(`"light"`)},
			want: ThemeModeSet{Mode: domain.ThemeModeLight},
		},
		{
			name: "option set",
			env:  Envelope{Action: ActionOptionSet, Data: json.RawMessage(`{"option":"userChrome","enabled":true}`)},
			want: OptionSet{Enabled: true, Option: domain.OptionUserChrome},
		},
		{
			name: "debugging output",
			env:  Envelope{Action: ActionDebuggingOutput, Data: json.RawMessage(`"pywal colors loaded"`)},
			want: DebuggingOutput{Line: "pywal colors loaded"},
		},
		{
			name: "font size",
			env:  Envelope{Action: ActionFontSizeSet, Data: json.RawMessage(`14`)},
			want: FontSizeSet{Size: 14},
		},
		{
			name: "palette template",
			env:  Envelope{Action: ActionPaletteTemplateSet, Data: json.RawMessage(`{"background":3}`)},
			want: PaletteTemplateSet{Palette: domain.PaletteTemplate{domain.RoleBackground: 3}},
		},
		{
			name: "request failed",
			env:  Envelope{Action: ActionRequestFailed, Data: json.RawMessage(`{"action":"set-option","error":"boom","option":"userContent"}`)},
			want: RequestFailed{Action: ActionSetOption, Error: "boom", Option: domain.OptionUserContent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, err := Decode(tt.env)

			require.NoError(t, err)
			assert.Equal(t, SourceRuntime, evt.Source)
			assert.Equal(t, tt.want, evt.Notification)
		})
	}
}

func TestDecode_KeepsCorrelationID(t *testing.T) {
	evt, err := Decode(Envelope{Action: ActionFontSizeSet, CorrelationID: 42, Data: json.RawMessage(`10`)})

	require.NoError(t, err)
	assert.Equal(t, uint64(42), evt.CorrelationID)
}

func TestDecode_Errors(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		_, err := Decode(Envelope{Action: "mystery"})
		assert.ErrorIs(t, err, domain.ErrUnknownAction)
	})

	t.Run("missing data", func(t *testing.T) {
		_, err := Decode(Envelope{Action: ActionPywalColorsSet})
		assert.ErrorIs(t, err, errMissingData)
	})

	t.Run("invalid theme mode", func(t *testing.T) {
		_, err := Decode(Envelope{Action: ActionThemeModeSet, Data: json.RawMessage(`"sepia"`)})
		assert.ErrorIs(t, err, domain.ErrInvalidThemeMode)
	})

	t.Run("short palette", func(t *testing.T) {
		_, err := Decode(Envelope{Action: ActionPywalColorsSet, Data: json.RawMessage(`["#000000"]`)})
		assert.ErrorIs(t, err, domain.ErrInvalidPalette)
	})
}

func TestEncodeNotification(t *testing.T) {
	env, err := EncodeNotification(OptionSet{Enabled: false, Option: domain.OptionDuckDuckGo}, 7)
	require.NoError(t, err)

	assert.Equal(t, ActionOptionSet, env.Action)
	assert.Equal(t, uint64(7), env.CorrelationID)
	assert.JSONEq(t, `{"enabled":false,"option":"duckduckgo"}`, string(env.Data))

	evt, err := Decode(env)
	require.NoError(t, err)
	assert.Equal(t, OptionSet{Enabled: false, Option: domain.OptionDuckDuckGo}, evt.Notification)
}

func TestEncodeNotification_RejectsHelperLifecycle(t *testing.T) {
	_, err := EncodeNotification(HelperConnected{}, 0)

	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}
