package domain

// DebuggingInfo describes the helper connection as shown on the debugging card.
type DebuggingInfo struct {
	Connected bool   `json:"connected"`
	Version   string `json:"version"`
}

// InitialData is the snapshot hydrated once per session.
type InitialData struct {
	DebuggingInfo DebuggingInfo  `json:"debuggingInfo"`
	Enabled       bool           `json:"enabled"`
	FontSize      int            `json:"fontSize"`
	Options       []OptionData   `json:"options"`
	PywalColors   *PaletteColors `json:"pywalColors"`
	Template      Template       `json:"template"`
	ThemeMode     ThemeMode      `json:"themeMode"`
}

// Font size bounds accepted by the helper.
const (
	DefaultFontSize = 0
	MaxFontSize     = 30
	MinFontSize     = 6
)

// MinHelperVersion is the oldest helper release the extension can drive.
const MinHelperVersion = "2.7"
