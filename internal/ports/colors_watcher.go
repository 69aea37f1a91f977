package ports

import "context"

// ColorsWatcher reports changes to the color generator's output.
type ColorsWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after each change.
	Watch(ctx context.Context, onChange func()) error
}
