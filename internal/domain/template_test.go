package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPalette_AcceptsEveryValidIndex(t *testing.T) {
	for idx := 0; idx < PywalColorCount; idx++ {
		tmpl := DefaultTemplate()

		_, err := tmpl.SetPalette(map[string]int{RoleAccentPrimary: idx})
		require.NoError(t, err)

		resolved, err := tmpl.Resolve(RoleAccentPrimary)
		require.NoError(t, err)
		assert.Equal(t, idx, resolved)
	}
}

func TestSetPalette_RejectsOutOfRangeWithoutPartialWrite(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"equal to count", PywalColorCount},
		{"helper extra color", 17},
		{"large", 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := DefaultTemplate()
			before := tmpl.Clone()

			changed, err := tmpl.SetPalette(map[string]int{
				RoleBackground:    3, // valid, must not be applied either
				RoleAccentPrimary: tt.index,
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidIndex))
			var idxErr *IndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, RoleAccentPrimary, idxErr.Role)
			assert.Nil(t, changed)
			assert.Equal(t, before, tmpl)
		})
	}
}

func TestSetPalette_RejectsUnknownRole(t *testing.T) {
	tmpl := DefaultTemplate()

	_, err := tmpl.SetPalette(map[string]int{"notARole": 1})

	require.ErrorIs(t, err, ErrUnknownRole)
	_, err = tmpl.Resolve("notARole")
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestSetPalette_ReturnsOnlyChangedKeys(t *testing.T) {
	tmpl := DefaultTemplate()

	changed, err := tmpl.SetPalette(map[string]int{
		RoleBackground:    0, // same as default
		RoleText:          4,
		RoleAccentPrimary: 9,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{RoleAccentPrimary, RoleText}, changed)
}

func TestReplacePalette_ValidatesWholeMapping(t *testing.T) {
	tmpl := DefaultTemplate()
	before := tmpl.Clone()

	err := tmpl.ReplacePalette(PaletteTemplate{RoleBackground: 1, RoleText: 99})

	require.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, before, tmpl)

	require.NoError(t, tmpl.ReplacePalette(PaletteTemplate{RoleBackground: 4}))
	assert.Equal(t, PaletteTemplate{RoleBackground: 4}, tmpl.Palette)
}

func TestReplacePalette_DoesNotAliasInput(t *testing.T) {
	tmpl := DefaultTemplate()
	input := PaletteTemplate{RoleBackground: 4}

	require.NoError(t, tmpl.ReplacePalette(input))
	input[RoleBackground] = 5

	idx, err := tmpl.Resolve(RoleBackground)
	require.NoError(t, err)
	assert.Equal(t, 4, idx)
}

func TestSetBrowserMapping_IsStructuralReplace(t *testing.T) {
	tmpl := DefaultTemplate()

	tmpl.SetBrowserMapping(ThemeTemplate{"frame": "unknownRole"})

	assert.Equal(t, ThemeTemplate{"frame": "unknownRole"}, tmpl.Browser)
}

func TestDiffFromDefault(t *testing.T) {
	tmpl := DefaultTemplate()
	assert.True(t, tmpl.DiffFromDefault().Empty())

	_, err := tmpl.SetPalette(map[string]int{RoleText: 3})
	require.NoError(t, err)
	delete(tmpl.Browser, "frame")
	tmpl.Browser["toolbar"] = RoleAccentSecondary

	diff := tmpl.DiffFromDefault()
	assert.Equal(t, []string{RoleText}, diff.Palette)
	assert.Equal(t, []string{"frame", "toolbar"}, diff.Browser)
}

func TestResolveColor(t *testing.T) {
	colors := testPalette()
	tmpl := Template{Palette: PaletteTemplate{RoleAccentPrimary: 4}}

	color, err := tmpl.ResolveColor(RoleAccentPrimary, colors)
	require.NoError(t, err)
	assert.Equal(t, colors[4], color)

	_, err = tmpl.ResolveColor(RoleBackground, colors)
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestBuildBrowserTheme_ReportsUnresolvedKeys(t *testing.T) {
	colors := testPalette()
	tmpl := Template{
		Browser: ThemeTemplate{"frame": RoleBackground, "toolbar": "missing"},
		Palette: PaletteTemplate{RoleBackground: 2},
	}

	theme, err := BuildBrowserTheme(tmpl, colors)

	require.ErrorIs(t, err, ErrUnresolved)
	assert.Equal(t, BrowserTheme{"frame": colors[2]}, theme)
}

func TestBuildBrowserTheme_DefaultTemplateResolvesFully(t *testing.T) {
	theme, err := BuildBrowserTheme(DefaultTemplate(), testPalette())

	require.NoError(t, err)
	assert.Len(t, theme, len(BrowserKeys))
}

func testPalette() PaletteColors {
	var p PaletteColors
	for i := range p {
		p[i] = "#0000" + "0123456789abcdefgh"[i:i+1] + "0"
	}
	p[16], p[17] = "#101010", "#202020"
	return p
}
