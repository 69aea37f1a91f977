package ports

import (
	"context"

	"pywalfox/internal/domain"
)

// ThemeSink accepts finished browser themes
type ThemeSink interface {
	Apply(ctx context.Context, theme domain.BrowserTheme, mode domain.ThemeMode) error
	// Reset restores the browser's default theme
	Reset(ctx context.Context) error
}
