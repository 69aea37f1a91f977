package controller

import (
	"maps"

	"pywalfox/internal/domain"
)

// AppState is the settings state. The controller is its only writer.
type AppState struct {
	Colors       *domain.PaletteColors
	Debugging    domain.DebuggingInfo
	Enabled      bool
	FontSize     int
	Log          *LineRing
	Options      domain.OptionState
	Template     domain.Template
	ThemeMode    domain.ThemeMode // "" until a mode has been selected
	UpdateNeeded string           // helper version that failed the minimum check
}

// NewAppState returns the state shown before the initial snapshot arrives.
func NewAppState(logLines int) *AppState {
	return &AppState{
		Log:      NewLineRing(logLines),
		Options:  domain.OptionState{},
		Template: domain.DefaultTemplate(),
	}
}

func (s *AppState) colorsCopy() *domain.PaletteColors {
	if s.Colors == nil {
		return nil
	}
	c := *s.Colors
	return &c
}

func (s *AppState) optionsCopy() domain.OptionState {
	return maps.Clone(s.Options)
}
