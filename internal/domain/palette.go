package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// PaletteLength is the number of colors the helper sends: 16 from pywal plus 2 of its own.
	PaletteLength = 18
	// PywalColorCount is the number of colors a palette template may index into.
	PywalColorCount = 16
)

// PaletteColors is the ordered color sequence received from the helper process.
// Indices 0-15 come from pywal, 16-17 are appended by the helper.
// It is a value type: a new generation replaces it wholesale.
type PaletteColors [PaletteLength]string

// NewPaletteColors validates a raw color list and converts it into PaletteColors.
func NewPaletteColors(colors []string) (PaletteColors, error) {
	var p PaletteColors
	if len(colors) != PaletteLength {
		return p, fmt.Errorf("%w: expected %d colors, got %d", ErrInvalidPalette, PaletteLength, len(colors))
	}
	for i, c := range colors {
		normalized, err := NormalizeHex(c)
		if err != nil {
			return p, fmt.Errorf("color %d: %w", i, err)
		}
		p[i] = normalized
	}
	return p, nil
}

// At returns the color at index i, or an error when i is outside the palette.
func (p PaletteColors) At(i int) (string, error) {
	if i < 0 || i >= PaletteLength {
		return "", fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return p[i], nil
}

// Slice returns the colors as a fresh slice.
func (p PaletteColors) Slice() []string {
	out := make([]string, PaletteLength)
	copy(out, p[:])
	return out
}

// NormalizeHex accepts #rgb or #rrggbb (case-insensitive) and returns lowercase #rrggbb.
func NormalizeHex(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if !strings.HasPrefix(v, "#") {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	digits := v[1:]
	for _, r := range digits {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
		}
	}
	switch len(digits) {
	case 6:
		return v, nil
	case 3:
		return "#" + strings.Repeat(digits[0:1], 2) + strings.Repeat(digits[1:2], 2) + strings.Repeat(digits[2:3], 2), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
}

// UnmarshalJSON decodes a JSON array and applies the same validation as NewPaletteColors.
func (p *PaletteColors) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewPaletteColors(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
