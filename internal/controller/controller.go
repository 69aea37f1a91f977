// Package controller routes inbound notifications into the settings state and
// turns user actions into outbound intents.
package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pywalfox/internal/dialog"
	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
	"pywalfox/internal/ports"
	"pywalfox/internal/view"
)

// DefaultRequestTimeout is how long an intent may wait for its outcome.
const DefaultRequestTimeout = 30 * time.Second

// ErrNoColorTarget is returned when a color is picked with no color picker open.
var ErrNoColorTarget = errors.New("color picker is not open")

// Sender posts outbound intents. It is satisfied by *messaging.Bus.
type Sender interface {
	Send(in messaging.Intent) (uint64, error)
}

// Renderer draws a projected frame.
type Renderer interface {
	Render(frame view.Frame)
}

// Config holds the controller's tunables.
type Config struct {
	LogLines       int
	RequestTimeout time.Duration
}

// Controller owns the settings state and the dialog coordinator. All methods
// must be called from a single goroutine.
type Controller struct {
	bus      Sender
	clock    func() time.Time
	dialogs  *dialog.Coordinator[dialog.Kind, string]
	pending  *messaging.Pending
	renderer Renderer
	state    *AppState
	surface  ports.Surface
}

// New creates a controller. renderer may be nil.
func New(bus Sender, surface ports.Surface, renderer Renderer, cfg Config) *Controller {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}
	return &Controller{
		bus:      bus,
		clock:    time.Now,
		dialogs:  dialog.NewSettingsCoordinator(surface),
		pending:  messaging.NewPending(timeout),
		renderer: renderer,
		state:    NewAppState(cfg.LogLines),
		surface:  surface,
	}
}

// Snapshot returns a copy of the state for projection.
func (c *Controller) Snapshot() view.Snapshot {
	return view.Snapshot{
		Colors:       c.state.colorsCopy(),
		Debugging:    c.state.Debugging,
		Dialog:       c.dialogs.Session(),
		Enabled:      c.state.Enabled,
		FontSize:     c.state.FontSize,
		Log:          c.state.Log.Snapshot(),
		LogDropped:   c.state.Log.Dropped(),
		Options:      c.state.optionsCopy(),
		Template:     c.state.Template.Clone(),
		ThemeMode:    c.state.ThemeMode,
		UpdateNeeded: c.state.UpdateNeeded,
	}
}

// Frame projects the current state.
func (c *Controller) Frame() view.Frame {
	return view.Project(c.Snapshot())
}

// PendingRequests returns the number of intents still waiting for an outcome.
func (c *Controller) PendingRequests() int {
	return c.pending.Len()
}

// Run is the headless event loop. It handles events and expires pending
// requests every tick until ctx is cancelled or events is closed.
func (c *Controller) Run(ctx context.Context, events <-chan messaging.Event, tick time.Duration) error {
	if tick <= 0 {
		tick = time.Second
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			c.Handle(evt)
		case now := <-ticker.C:
			c.Tick(now)
		}
	}
}

// Tick expires requests whose deadline has passed.
func (c *Controller) Tick(now time.Time) {
	expired := c.pending.Expire(now)
	if len(expired) == 0 {
		return
	}
	for _, req := range expired {
		err := fmt.Errorf("%w: %s (request %d)", domain.ErrTimeout, req.Intent.Action(), req.ID)
		logging.Logger.Warn("Request timed out", "action", req.Intent.Action(), "correlation_id", req.ID, "error", err)
		c.state.Log.Add(err.Error())
		if in, ok := req.Intent.(messaging.SetOption); ok {
			c.state.Options.Fail(in.Option)
		}
	}
	c.render()
}

func (c *Controller) render() {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(c.Frame())
}

// expectsReply reports whether the background answers in with a notification.
func expectsReply(in messaging.Intent) bool {
	switch in.(type) {
	case messaging.Disable, messaging.UsePaletteAsTemplate:
		return false
	}
	return true
}

func (c *Controller) send(in messaging.Intent) error {
	id, err := c.bus.Send(in)
	if err != nil {
		logging.Logger.Error("Failed to send intent", "action", in.Action(), "error", err)
		c.state.Log.Add(fmt.Sprintf("%s: %v", in.Action(), err))
		return err
	}
	if expectsReply(in) {
		c.pending.Track(id, in, c.clock())
	}
	return nil
}
