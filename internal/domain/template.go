package domain

import (
	"fmt"
	"maps"
	"slices"
)

// PaletteTemplate maps a semantic role to an index into PaletteColors.
type PaletteTemplate map[string]int

// Clone returns an independent copy of the mapping.
func (p PaletteTemplate) Clone() PaletteTemplate {
	if p == nil {
		return PaletteTemplate{}
	}
	return maps.Clone(p)
}

// Validate checks that every role is known and every index is in [0, PywalColorCount).
func (p PaletteTemplate) Validate() error {
	for _, role := range slices.Sorted(maps.Keys(p)) {
		if !IsKnownRole(role) {
			return fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		if idx := p[role]; idx < 0 || idx >= PywalColorCount {
			return &IndexError{Index: idx, Role: role}
		}
	}
	return nil
}

// ThemeTemplate maps a browser theme key to a semantic role.
type ThemeTemplate map[string]string

// Clone returns an independent copy of the mapping.
func (t ThemeTemplate) Clone() ThemeTemplate {
	if t == nil {
		return ThemeTemplate{}
	}
	return maps.Clone(t)
}

// Template is the in-memory source of truth for what color goes where.
// All mutation goes through its methods so that trusted (storage) and untrusted (user)
// input pass the same validation.
type Template struct {
	Browser ThemeTemplate   `json:"browser"`
	Palette PaletteTemplate `json:"palette"`
}

// TemplateDiff lists keys that differ between two templates.
type TemplateDiff struct {
	Browser []string
	Palette []string
}

// Empty reports whether no key differs.
func (d TemplateDiff) Empty() bool {
	return len(d.Browser) == 0 && len(d.Palette) == 0
}

// Clone returns a deep copy of the template.
func (t *Template) Clone() Template {
	return Template{
		Browser: t.Browser.Clone(),
		Palette: t.Palette.Clone(),
	}
}

// SetPalette merges role->index edits into the palette mapping.
// Either every entry is applied or none is. It returns the sorted roles whose
// value actually changed.
func (t *Template) SetPalette(indices map[string]int) ([]string, error) {
	if err := PaletteTemplate(indices).Validate(); err != nil {
		return nil, err
	}
	if t.Palette == nil {
		t.Palette = PaletteTemplate{}
	}

	var changed []string
	for role, idx := range indices {
		if current, ok := t.Palette[role]; ok && current == idx {
			continue
		}
		t.Palette[role] = idx
		changed = append(changed, role)
	}
	slices.Sort(changed)
	return changed, nil
}

// ReplacePalette swaps the whole palette mapping after validating it.
func (t *Template) ReplacePalette(p PaletteTemplate) error {
	if err := p.Validate(); err != nil {
		return err
	}
	t.Palette = p.Clone()
	return nil
}

// SetBrowserMapping replaces the browser mapping. Role names are resolved lazily,
// so no validation happens here.
func (t *Template) SetBrowserMapping(m ThemeTemplate) {
	t.Browser = m.Clone()
}

// Resolve returns the palette index for role.
func (t *Template) Resolve(role string) (int, error) {
	idx, ok := t.Palette[role]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolved, role)
	}
	return idx, nil
}

// ResolveColor returns the concrete color for role from colors.
func (t *Template) ResolveColor(role string, colors PaletteColors) (string, error) {
	idx, err := t.Resolve(role)
	if err != nil {
		return "", err
	}
	return colors.At(idx)
}

// DiffFromDefault lists the keys that differ from DefaultTemplate, including keys
// missing on either side.
func (t *Template) DiffFromDefault() TemplateDiff {
	def := DefaultTemplate()
	return TemplateDiff{
		Browser: diffKeys(t.Browser, def.Browser),
		Palette: diffKeys(t.Palette, def.Palette),
	}
}

func diffKeys[V comparable](current, reference map[string]V) []string {
	var out []string
	for k, v := range current {
		if rv, ok := reference[k]; !ok || rv != v {
			out = append(out, k)
		}
	}
	for k := range reference {
		if _, ok := current[k]; !ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
