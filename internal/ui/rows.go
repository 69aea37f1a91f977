package ui

import (
	"pywalfox/internal/domain"
	"pywalfox/internal/view"
)

type rowKind int

const (
	rowFetch rowKind = iota
	rowDisable
	rowThemeMode
	rowPaletteRole
	rowPaletteSave
	rowPaletteReset
	rowUsePalette
	rowTemplateToggle
	rowThemeKey
	rowThemeSave
	rowThemeReset
	rowOption
	rowFontSize
)

// row is one focusable control of the settings page. name is the role,
// browser key or option the row edits.
type row struct {
	kind rowKind
	name string
}

// buildRows lists the focusable controls of f in display order.
func buildRows(f view.Frame, templateOpen bool) []row {
	rows := []row{{kind: rowFetch}, {kind: rowDisable}, {kind: rowThemeMode}}
	for _, p := range f.Palette {
		rows = append(rows, row{kind: rowPaletteRole, name: p.Role})
	}
	rows = append(rows,
		row{kind: rowPaletteSave},
		row{kind: rowPaletteReset},
		row{kind: rowUsePalette},
		row{kind: rowTemplateToggle},
	)
	if templateOpen {
		for _, k := range f.ThemeTemplate {
			rows = append(rows, row{kind: rowThemeKey, name: k.Key})
		}
		rows = append(rows, row{kind: rowThemeSave}, row{kind: rowThemeReset})
	}
	for _, o := range f.Options {
		rows = append(rows, row{kind: rowOption, name: o.Name})
	}
	return append(rows, row{kind: rowFontSize})
}

// stepIndex moves a palette index by delta, wrapping inside the pywal colors.
func stepIndex(index, delta int) int {
	if index < 0 {
		index = 0
	}
	return ((index+delta)%domain.PywalColorCount + domain.PywalColorCount) % domain.PywalColorCount
}

// stepRole returns the role delta positions after role in domain.Roles.
func stepRole(role string, delta int) string {
	n := len(domain.Roles)
	for i, r := range domain.Roles {
		if r == role {
			return domain.Roles[((i+delta)%n+n)%n]
		}
	}
	return domain.Roles[0]
}
