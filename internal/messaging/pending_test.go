package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pywalfox/internal/domain"
)

func TestPending_Resolve(t *testing.T) {
	p := NewPending(time.Second)
	now := time.Now()
	p.Track(1, Fetch{}, now)

	req, ok := p.Resolve(1)
	require.True(t, ok)
	assert.Equal(t, Fetch{}, req.Intent)
	assert.Equal(t, now.Add(time.Second), req.Deadline)

	_, ok = p.Resolve(1)
	assert.False(t, ok)
	assert.Zero(t, p.Len())
}

func TestPending_ExpireReturnsOldestFirst(t *testing.T) {
	p := NewPending(time.Second)
	start := time.Now()
	p.Track(3, Fetch{}, start)
	p.Track(1, Disable{}, start)
	p.Track(5, GetInitialData{}, start.Add(2*time.Second))

	expired := p.Expire(start.Add(1500 * time.Millisecond))

	require.Len(t, expired, 2)
	assert.Equal(t, uint64(1), expired[0].ID)
	assert.Equal(t, uint64(3), expired[1].ID)
	assert.Equal(t, 1, p.Len())
}

func TestPending_NoTimeoutNeverExpires(t *testing.T) {
	p := NewPending(0)
	p.Track(1, Fetch{}, time.Now())

	assert.Empty(t, p.Expire(time.Now().Add(time.Hour)))
	assert.Equal(t, 1, p.Len())
}

func TestPending_ResolveWhere(t *testing.T) {
	p := NewPending(time.Second)
	now := time.Now()
	p.Track(1, SetOption{Enabled: true, Option: domain.OptionUserChrome}, now)
	p.Track(2, SetOption{Enabled: true, Option: domain.OptionUserContent}, now)

	got := p.ResolveWhere(func(req PendingRequest) bool {
		in, ok := req.Intent.(SetOption)
		return ok && in.Option == domain.OptionUserChrome
	})

	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, 1, p.Len())
}
