package dialog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pywalfox/internal/ports"
	portsmocks "pywalfox/internal/ports/mocks"
)

// visibleSurface tracks which elements are shown.
type visibleSurface struct {
	visible map[string]bool
}

func newVisibleSurface() *visibleSurface {
	return &visibleSurface{visible: make(map[string]bool)}
}

func (s *visibleSurface) Deselect(string)           {}
func (s *visibleSurface) Select(string)             {}
func (s *visibleSurface) Hide(element string)       { delete(s.visible, element) }
func (s *visibleSurface) Show(element string)       { s.visible[element] = true }
func (s *visibleSurface) shown(element string) bool { return s.visible[element] }

var (
	colorPickerElement = ports.DialogElement(string(ColorPicker))
	themePickerElement = ports.DialogElement(string(ThemePicker))
)

func TestRequest_OpensDialogAndOverlay(t *testing.T) {
	surface := portsmocks.NewMockSurface(t)
	surface.EXPECT().Show(ports.ElementOverlay).Return().Once()
	surface.EXPECT().Show(colorPickerElement).Return().Once()

	c := NewSettingsCoordinator(surface)
	session, err := c.Request(ColorPicker, "background")

	require.NoError(t, err)
	assert.Equal(t, SettingsSession{ID: ColorPicker, Open: true, Target: "background"}, session)
}

func TestRequest_ToggleLaw(t *testing.T) {
	surface := newVisibleSurface()
	c := NewSettingsCoordinator(surface)

	_, err := c.Request(ColorPicker, "text")
	require.NoError(t, err)
	session, err := c.Request(ColorPicker, "text")
	require.NoError(t, err)

	assert.False(t, session.Open)
	assert.False(t, surface.shown(ports.ElementOverlay))
	assert.False(t, surface.shown(colorPickerElement))
}

func TestRequest_RetargetLaw(t *testing.T) {
	surface := newVisibleSurface()
	c := NewSettingsCoordinator(surface)

	_, err := c.Request(ColorPicker, "background")
	require.NoError(t, err)
	session, err := c.Request(ColorPicker, "foreground")
	require.NoError(t, err)

	assert.Equal(t, SettingsSession{ID: ColorPicker, Open: true, Target: "foreground"}, session)
	assert.True(t, surface.shown(ports.ElementOverlay))
	assert.True(t, surface.shown(colorPickerElement))
}

func TestRequest_SingleTargetDialogClosesFromOtherTarget(t *testing.T) {
	c := NewCoordinator[Kind, string](newVisibleSurface())
	c.Register(ThemePicker, themePickerElement, false)

	_, err := c.Request(ThemePicker, "a")
	require.NoError(t, err)
	session, err := c.Request(ThemePicker, "b")
	require.NoError(t, err)

	assert.False(t, session.Open)
}

func TestRequest_SwitchesDialogsKeepingOverlay(t *testing.T) {
	surface := portsmocks.NewMockSurface(t)
	surface.EXPECT().Show(ports.ElementOverlay).Return().Once()
	surface.EXPECT().Show(colorPickerElement).Return().Once()
	surface.EXPECT().Hide(colorPickerElement).Return().Once()
	surface.EXPECT().Show(themePickerElement).Return().Once()

	c := NewSettingsCoordinator(surface)
	_, err := c.Request(ColorPicker, "accentPrimary")
	require.NoError(t, err)
	session, err := c.Request(ThemePicker, ThemeButton)
	require.NoError(t, err)

	assert.Equal(t, SettingsSession{ID: ThemePicker, Open: true, Target: ThemeButton}, session)
	assert.False(t, c.IsOpen(ColorPicker))
	assert.True(t, c.IsOpen(ThemePicker))
}

func TestClose(t *testing.T) {
	t.Run("hides dialog and overlay", func(t *testing.T) {
		surface := newVisibleSurface()
		c := NewSettingsCoordinator(surface)
		_, err := c.Request(ThemePicker, ThemeButton)
		require.NoError(t, err)

		c.Close()

		assert.False(t, c.Session().Open)
		assert.Empty(t, surface.visible)
	})

	t.Run("no-op when closed", func(t *testing.T) {
		surface := portsmocks.NewMockSurface(t)
		c := NewSettingsCoordinator(surface)

		c.Close()

		assert.False(t, c.Session().Open)
	})
}

func TestRequest_UnknownDialog(t *testing.T) {
	c := NewSettingsCoordinator(newVisibleSurface())

	_, err := c.Request(Kind("fontpicker"), "x")

	assert.ErrorIs(t, err, ErrUnknownDialog)
	assert.False(t, c.Session().Open)
}

func TestRequest_MutualExclusionOverRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := []Kind{ColorPicker, ThemePicker}
	targets := []string{"background", "foreground", "text", ThemeButton}

	surface := newVisibleSurface()
	c := NewSettingsCoordinator(surface)

	for i := 0; i < 500; i++ {
		if rng.Intn(10) == 0 {
			c.Close()
		} else {
			_, err := c.Request(kinds[rng.Intn(len(kinds))], targets[rng.Intn(len(targets))])
			require.NoError(t, err)
		}

		openDialogs := 0
		for _, el := range []string{colorPickerElement, themePickerElement} {
			if surface.shown(el) {
				openDialogs++
			}
		}
		require.LessOrEqual(t, openDialogs, 1, "step %d", i)
		require.Equal(t, c.Session().Open, surface.shown(ports.ElementOverlay), "step %d", i)
		require.Equal(t, c.Session().Open, openDialogs == 1, "step %d", i)
	}
}
