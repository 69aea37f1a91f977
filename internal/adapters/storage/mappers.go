package storage

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"pywalfox/internal/domain"
)

// paletteModelsToDomain converts palette rows to a PaletteTemplate
func paletteModelsToDomain(rows []PaletteEntryModel) domain.PaletteTemplate {
	out := make(domain.PaletteTemplate, len(rows))
	for _, r := range rows {
		out[r.Role] = r.PaletteIndex
	}
	return out
}

// domainToPaletteModels converts a PaletteTemplate to rows ordered by role
func domainToPaletteModels(p domain.PaletteTemplate) []PaletteEntryModel {
	rows := make([]PaletteEntryModel, 0, len(p))
	for role, idx := range p {
		rows = append(rows, PaletteEntryModel{PaletteIndex: idx, Role: role})
	}
	slices.SortFunc(rows, func(a, b PaletteEntryModel) int { return strings.Compare(a.Role, b.Role) })
	return rows
}

// themeModelsToDomain converts theme rows to a ThemeTemplate
func themeModelsToDomain(rows []ThemeEntryModel) domain.ThemeTemplate {
	out := make(domain.ThemeTemplate, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Role
	}
	return out
}

// domainToThemeModels converts a ThemeTemplate to rows ordered by key
func domainToThemeModels(t domain.ThemeTemplate) []ThemeEntryModel {
	rows := make([]ThemeEntryModel, 0, len(t))
	for key, role := range t {
		rows = append(rows, ThemeEntryModel{Key: key, Role: role})
	}
	slices.SortFunc(rows, func(a, b ThemeEntryModel) int { return strings.Compare(a.Key, b.Key) })
	return rows
}

// optionModelsToDomain converts option rows to OptionData ordered by name
func optionModelsToDomain(rows []OptionModel) []domain.OptionData {
	out := make([]domain.OptionData, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.OptionData{Enabled: r.Enabled, Option: r.Name})
	}
	slices.SortFunc(out, func(a, b domain.OptionData) int { return strings.Compare(a.Option, b.Option) })
	return out
}

// colorsFromColumn decodes the stored palette; an empty column means no palette
func colorsFromColumn(raw string) (*domain.PaletteColors, error) {
	if raw == "" {
		return nil, nil
	}
	var colors domain.PaletteColors
	if err := json.Unmarshal([]byte(raw), &colors); err != nil {
		return nil, fmt.Errorf("failed to decode stored colors: %w", err)
	}
	return &colors, nil
}

// colorsToColumn encodes a palette for storage
func colorsToColumn(colors *domain.PaletteColors) (string, error) {
	if colors == nil {
		return "", nil
	}
	data, err := json.Marshal(colors.Slice())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
