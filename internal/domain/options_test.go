package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionState_LoadingClearedOnlyByConfirmOrFail(t *testing.T) {
	s := OptionState{}

	s.MarkLoading(OptionUserChrome)
	assert.True(t, s.Get(OptionUserChrome).Loading)

	s.Confirm(OptionUserContent, true)
	assert.True(t, s.Get(OptionUserChrome).Loading, "confirming another option must not touch userChrome")

	s.Confirm(OptionUserChrome, true)
	assert.Equal(t, OptionStatus{Enabled: true}, s.Get(OptionUserChrome))

	s.MarkLoading(OptionUserChrome)
	s.Fail(OptionUserChrome)
	assert.Equal(t, OptionStatus{Enabled: true}, s.Get(OptionUserChrome))
}

func TestParseThemeMode(t *testing.T) {
	for _, m := range ThemeModes {
		got, err := ParseThemeMode(string(m))
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseThemeMode("sepia")
	assert.ErrorIs(t, err, ErrInvalidThemeMode)
}

func TestModeFromSystem(t *testing.T) {
	assert.Equal(t, ThemeModeDark, ModeFromSystem(true))
	assert.Equal(t, ThemeModeLight, ModeFromSystem(false))
}
