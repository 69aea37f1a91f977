package ports

import (
	"context"

	"pywalfox/internal/domain"
)

// SettingsReader reads the persisted extension state
type SettingsReader interface {
	// Load returns the persisted snapshot. Missing templates come back as defaults.
	// DebuggingInfo is runtime-only and always zero.
	Load(ctx context.Context) (domain.InitialData, error)
}

// SettingsWriter persists individual parts of the extension state
type SettingsWriter interface {
	// SaveColors stores the palette; nil clears it.
	SaveColors(ctx context.Context, colors *domain.PaletteColors) error
	SaveEnabled(ctx context.Context, enabled bool) error
	SaveFontSize(ctx context.Context, size int) error
	SaveOption(ctx context.Context, option domain.OptionData) error
	SavePaletteTemplate(ctx context.Context, palette domain.PaletteTemplate) error
	SaveThemeMode(ctx context.Context, mode domain.ThemeMode) error
	SaveThemeTemplate(ctx context.Context, browser domain.ThemeTemplate) error
}

// SettingsRepository is the composite interface
type SettingsRepository interface {
	SettingsReader
	SettingsWriter
	Close() error
}
