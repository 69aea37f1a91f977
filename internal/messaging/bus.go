package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"pywalfox/internal/logging"
)

// Transport carries envelopes to the background service and exposes the two
// inbound streams. Post must not block on the outcome of the request.
type Transport interface {
	Helper() <-chan Notification
	Post(env Envelope) error
	Runtime() <-chan Envelope
}

// Bus merges the runtime and helper streams into one typed event source and
// tags every outbound intent with a monotonically increasing correlation id.
type Bus struct {
	events    chan Event
	lastID    atomic.Uint64
	transport Transport
}

// NewBus creates a bus on top of transport. Call Run to start forwarding.
func NewBus(transport Transport) *Bus {
	return &Bus{
		events:    make(chan Event, 64),
		transport: transport,
	}
}

// Events returns the merged inbound stream. It is closed when Run returns.
func (b *Bus) Events() <-chan Event {
	return b.events
}

// Send posts an intent and returns the correlation id attached to it.
// There is no acknowledgement beyond the transport accepting the envelope.
func (b *Bus) Send(in Intent) (uint64, error) {
	id := b.lastID.Add(1)
	env, err := EncodeIntent(in, id)
	if err != nil {
		return id, err
	}
	if err := b.transport.Post(env); err != nil {
		return id, fmt.Errorf("post %s: %w", env.Action, err)
	}
	logging.Logger.Debug("Intent sent", "action", env.Action, "correlation_id", id)
	return id, nil
}

// Run forwards both streams until ctx is cancelled or both streams are closed.
func (b *Bus) Run(ctx context.Context) error {
	defer close(b.events)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.forwardRuntime(ctx) })
	g.Go(func() error { return b.forwardHelper(ctx) })

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (b *Bus) forwardRuntime(ctx context.Context) error {
	in := b.transport.Runtime()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env, ok := <-in:
			if !ok {
				return nil
			}
			evt, err := Decode(env)
			if err != nil {
				logging.Logger.Warn("Dropping undecodable runtime message", "action", env.Action, "error", err)
				continue
			}
			if !b.emit(ctx, evt) {
				return ctx.Err()
			}
		}
	}
}

func (b *Bus) forwardHelper(ctx context.Context) error {
	in := b.transport.Helper()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n, ok := <-in:
			if !ok {
				return nil
			}
			if !b.emit(ctx, Event{Notification: n, Source: SourceHelper}) {
				return ctx.Err()
			}
		}
	}
}

func (b *Bus) emit(ctx context.Context, evt Event) bool {
	select {
	case <-ctx.Done():
		return false
	case b.events <- evt:
		return true
	}
}
