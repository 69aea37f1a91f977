package domain

import (
	"errors"
	"fmt"
)

// BrowserTheme is the finished theme object handed to the theme sink:
// browser key -> concrete hex color.
type BrowserTheme map[string]string

// BuildBrowserTheme resolves every browser key through the palette template into a
// color. Keys whose role cannot be resolved are omitted and reported in the joined error;
// the returned theme is still usable.
func BuildBrowserTheme(t Template, colors PaletteColors) (BrowserTheme, error) {
	theme := make(BrowserTheme, len(t.Browser))
	var errs []error
	for key, role := range t.Browser {
		color, err := t.ResolveColor(role, colors)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		theme[key] = color
	}
	return theme, errors.Join(errs...)
}
