package messaging

import (
	"slices"
	"time"
)

// PendingRequest is an intent still waiting for its outcome notification.
type PendingRequest struct {
	Deadline time.Time
	ID       uint64
	Intent   Intent
}

// Pending tracks in-flight requests by correlation id. It belongs to the
// controller's event loop and is not safe for concurrent use.
type Pending struct {
	requests map[uint64]PendingRequest
	timeout  time.Duration
}

// NewPending creates a table whose entries expire after timeout.
// A non-positive timeout disables expiry.
func NewPending(timeout time.Duration) *Pending {
	return &Pending{
		requests: make(map[uint64]PendingRequest),
		timeout:  timeout,
	}
}

// Track records an intent sent at now.
func (p *Pending) Track(id uint64, in Intent, now time.Time) {
	req := PendingRequest{ID: id, Intent: in}
	if p.timeout > 0 {
		req.Deadline = now.Add(p.timeout)
	}
	p.requests[id] = req
}

// Resolve removes and returns the request with id.
func (p *Pending) Resolve(id uint64) (PendingRequest, bool) {
	req, ok := p.requests[id]
	if ok {
		delete(p.requests, id)
	}
	return req, ok
}

// ResolveWhere removes and returns every request matching fn, oldest first.
// It covers outcomes that arrive without a correlation id.
func (p *Pending) ResolveWhere(fn func(PendingRequest) bool) []PendingRequest {
	var out []PendingRequest
	for id, req := range p.requests {
		if fn(req) {
			out = append(out, req)
			delete(p.requests, id)
		}
	}
	sortByID(out)
	return out
}

// Expire removes and returns every request whose deadline is before now, oldest first.
func (p *Pending) Expire(now time.Time) []PendingRequest {
	return p.ResolveWhere(func(req PendingRequest) bool {
		return !req.Deadline.IsZero() && now.After(req.Deadline)
	})
}

// Len returns the number of in-flight requests.
func (p *Pending) Len() int {
	return len(p.requests)
}

func sortByID(reqs []PendingRequest) {
	slices.SortFunc(reqs, func(a, b PendingRequest) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
