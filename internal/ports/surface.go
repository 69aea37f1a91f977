package ports

import "pywalfox/internal/domain"

// Surface is the rendering collaborator. Elements are addressed by name and the
// operations carry no further semantics.
type Surface interface {
	Deselect(element string)
	Hide(element string)
	Select(element string)
	Show(element string)
}

// ElementOverlay is the shared backdrop shown behind any open dialog.
const ElementOverlay = "overlay"

// DialogElement names the element of dialog id.
func DialogElement(id string) string {
	return "dialog:" + id
}

// ModeElement names the selector button for mode.
func ModeElement(mode domain.ThemeMode) string {
	return "mode:" + string(mode)
}

// OptionElement names the toggle control for option.
func OptionElement(option string) string {
	return "option:" + option
}
