// Package dialog implements the exclusive-open state machine for the overlay
// and the editor dialogs that sit on top of it.
package dialog

import (
	"errors"
	"fmt"

	"pywalfox/internal/logging"
	"pywalfox/internal/ports"
)

// ErrUnknownDialog is returned when requesting a dialog that was never registered.
var ErrUnknownDialog = errors.New("unknown dialog")

// Session describes the dialog currently on screen. The zero value means closed.
type Session[ID comparable, T comparable] struct {
	ID     ID
	Open   bool
	Target T
}

type registration struct {
	element     string
	multiTarget bool
}

// Coordinator keeps at most one dialog open and shows the overlay iff one is.
// It is not safe for concurrent use; the owner's event loop serializes calls.
type Coordinator[ID comparable, T comparable] struct {
	dialogs map[ID]registration
	session Session[ID, T]
	surface ports.Surface
}

// NewCoordinator creates a coordinator that drives surface.
func NewCoordinator[ID comparable, T comparable](surface ports.Surface) *Coordinator[ID, T] {
	return &Coordinator[ID, T]{
		dialogs: make(map[ID]registration),
		surface: surface,
	}
}

// Register declares a dialog and the element that renders it. A multi-target
// dialog follows its trigger instead of closing when invoked from another target.
func (c *Coordinator[ID, T]) Register(id ID, element string, multiTarget bool) {
	c.dialogs[id] = registration{element: element, multiTarget: multiTarget}
}

// Request handles a click on a dialog trigger and returns the resulting session.
func (c *Coordinator[ID, T]) Request(id ID, target T) (Session[ID, T], error) {
	reg, ok := c.dialogs[id]
	if !ok {
		return c.session, fmt.Errorf("%w: %v", ErrUnknownDialog, id)
	}

	if !c.session.Open {
		c.surface.Show(ports.ElementOverlay)
		c.open(id, reg, target)
		return c.session, nil
	}

	if c.session.ID == id {
		if !reg.multiTarget || c.session.Target == target {
			c.Close()
			return c.session, nil
		}
		// Retarget: same dialog follows the new trigger
		c.open(id, reg, target)
		return c.session, nil
	}

	c.surface.Hide(c.dialogs[c.session.ID].element)
	c.open(id, reg, target)
	return c.session, nil
}

// Close hides the open dialog and the overlay. It is a no-op when closed.
func (c *Coordinator[ID, T]) Close() {
	if !c.session.Open {
		return
	}
	logging.Logger.Debug("Closing dialog", "dialog", c.session.ID)
	c.surface.Hide(c.dialogs[c.session.ID].element)
	c.surface.Hide(ports.ElementOverlay)
	c.session = Session[ID, T]{}
}

// Session returns the current dialog session.
func (c *Coordinator[ID, T]) Session() Session[ID, T] {
	return c.session
}

// IsOpen reports whether dialog id is the open one.
func (c *Coordinator[ID, T]) IsOpen(id ID) bool {
	return c.session.Open && c.session.ID == id
}

func (c *Coordinator[ID, T]) open(id ID, reg registration, target T) {
	logging.Logger.Debug("Opening dialog", "dialog", id, "target", target)
	c.surface.Show(reg.element)
	c.session = Session[ID, T]{ID: id, Open: true, Target: target}
}
