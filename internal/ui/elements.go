package ui

import "pywalfox/internal/ports"

// Elements records which named elements the controller has shown or selected.
// The model reads it while rendering; both run on the Bubble Tea goroutine.
type Elements struct {
	selected map[string]bool
	shown    map[string]bool
}

var _ ports.Surface = (*Elements)(nil)

// NewElements creates an empty element set. Nothing is shown or selected.
func NewElements() *Elements {
	return &Elements{
		selected: make(map[string]bool),
		shown:    make(map[string]bool),
	}
}

func (e *Elements) Deselect(element string) { delete(e.selected, element) }
func (e *Elements) Hide(element string)     { delete(e.shown, element) }
func (e *Elements) Select(element string)   { e.selected[element] = true }
func (e *Elements) Show(element string)     { e.shown[element] = true }

// IsSelected reports whether element carries the selected marker.
func (e *Elements) IsSelected(element string) bool {
	return e.selected[element]
}

// IsShown reports whether element is visible.
func (e *Elements) IsShown(element string) bool {
	return e.shown[element]
}
