package server

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
)

// ErrSessionActive is returned when a second session tries to attach.
var ErrSessionActive = errors.New("another settings session is active")

type attachment struct {
	done   <-chan struct{}
	events chan messaging.Event
	id     string
}

// relay hands the bus events to the one attached session. Events that arrive
// while nobody is attached are dropped; a new session asks for the initial
// data on start.
type relay struct {
	active *attachment
	mu     sync.Mutex
}

// attach makes id the receiving session until done is closed.
func (r *relay) attach(id string, done <-chan struct{}) (<-chan messaging.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionActive, r.active.id)
	}
	a := &attachment{
		done:   done,
		events: make(chan messaging.Event, 64),
		id:     id,
	}
	r.active = a
	go func() {
		<-done
		r.detach(a)
	}()
	return a.events, nil
}

func (r *relay) detach(a *attachment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == a {
		r.active = nil
	}
	close(a.events)
	logging.Logger.Debug("Session detached", "session_id", a.id)
}

// activeID returns the attached session id, or "".
func (r *relay) activeID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return ""
	}
	return r.active.id
}

// run forwards src until it is closed or ctx is done.
func (r *relay) run(ctx context.Context, src <-chan messaging.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-src:
			if !ok {
				return nil
			}
			r.deliver(ctx, evt)
		}
	}
}

// deliver holds the lock while sending so detach never closes a channel
// that is being written to. The send gives up once the session is gone.
func (r *relay) deliver(ctx context.Context, evt messaging.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		logging.Logger.Debug("Dropping event with no session attached", "type", fmt.Sprintf("%T", evt.Notification))
		return
	}
	select {
	case r.active.events <- evt:
	case <-r.active.done:
	case <-ctx.Done():
	}
}
