package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaletteColors_RequiresEighteenColors(t *testing.T) {
	_, err := NewPaletteColors(make([]string, 16))
	assert.ErrorIs(t, err, ErrInvalidPalette)
}

func TestNewPaletteColors_NormalizesHex(t *testing.T) {
	raw := make([]string, PaletteLength)
	for i := range raw {
		raw[i] = "#ABC"
	}

	p, err := NewPaletteColors(raw)

	require.NoError(t, err)
	assert.Equal(t, "#aabbcc", p[0])
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"#1a2B3c", "#1a2b3c", false},
		{" #fff ", "#ffffff", false},
		{"fff", "", true},
		{"#ggg", "", true},
		{"#12345", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeHex(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPaletteColors_UnmarshalJSONValidates(t *testing.T) {
	var p PaletteColors
	err := json.Unmarshal([]byte(`["#000000"]`), &p)
	assert.ErrorIs(t, err, ErrInvalidPalette)

	raw := make([]string, PaletteLength)
	for i := range raw {
		raw[i] = "#123456"
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, "#123456", p[17])
}

func TestPaletteColors_At(t *testing.T) {
	p := testPalette()

	c, err := p.At(17)
	require.NoError(t, err)
	assert.Equal(t, "#202020", c)

	_, err = p.At(18)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
