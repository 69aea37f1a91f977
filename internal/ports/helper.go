package ports

import (
	"context"

	"pywalfox/internal/domain"
)

// HelperCallbacks is the reaction table for messages pushed by the helper process.
// Callbacks run on the client's reader goroutine. Nil entries are skipped.
type HelperCallbacks struct {
	Colorscheme      func(colors domain.PaletteColors)
	Connected        func()
	CSSToggleFailed  func(target, reason string)
	CSSToggleSuccess func(target string, enabled bool)
	Disconnected     func(reason string)
	FontSizeSet      func(size int)
	Output           func(line string)
	RequestFailed    func(action, reason string)
	ThemeMode        func(mode domain.ThemeMode)
	UpdateNeeded     func(version string)
	Version          func(version string)
}

// HelperClient talks to the privileged helper process ("native app")
type HelperClient interface {
	// Connect starts the helper and begins dispatching its messages to callbacks.
	// It returns once the channel is open; disconnection is reported through callbacks.
	Connect(ctx context.Context, callbacks HelperCallbacks) error
	Connected() bool
	Disconnect() error
	RequestColors() error
	RequestVersion() error
	SetCSSEnabled(target string, enabled bool) error
	SetFontSize(size int) error
}
