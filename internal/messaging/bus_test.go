package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	helper  chan Notification
	mu      sync.Mutex
	postErr error
	posted  []Envelope
	runtime chan Envelope
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		helper:  make(chan Notification, 8),
		runtime: make(chan Envelope, 8),
	}
}

func (f *fakeTransport) Helper() <-chan Notification { return f.helper }
func (f *fakeTransport) Runtime() <-chan Envelope    { return f.runtime }

func (f *fakeTransport) Post(env Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postErr != nil {
		return f.postErr
	}
	f.posted = append(f.posted, env)
	return nil
}

func TestBus_SendAssignsIncreasingIDs(t *testing.T) {
	tr := newFakeTransport()
	bus := NewBus(tr)

	first, err := bus.Send(Fetch{})
	require.NoError(t, err)
	second, err := bus.Send(SetFontSize{Size: 9})
	require.NoError(t, err)

	assert.Less(t, first, second)
	require.Len(t, tr.posted, 2)
	assert.Equal(t, first, tr.posted[0].CorrelationID)
	assert.Equal(t, ActionSetFontSize, tr.posted[1].Action)
}

func TestBus_SendReportsPostFailure(t *testing.T) {
	tr := newFakeTransport()
	tr.postErr = errors.New("closed")
	bus := NewBus(tr)

	_, err := bus.Send(Disable{})

	assert.ErrorIs(t, err, tr.postErr)
}

func TestBus_RunMergesStreams(t *testing.T) {
	tr := newFakeTransport()
	bus := NewBus(tr)

	tr.runtime <- Envelope{Action: "garbage"}
	tr.runtime <- Envelope{Action: ActionDebuggingOutput, Data: json.RawMessage(`"one"`)}
	tr.runtime <- Envelope{Action: ActionDebuggingOutput, Data: json.RawMessage(`"two"`)}
	tr.helper <- HelperConnected{}
	close(tr.runtime)
	close(tr.helper)

	done := make(chan error, 1)
	go func() { done <- bus.Run(context.Background()) }()

	var runtimeLines []string
	var helper []Notification
	for evt := range bus.Events() {
		switch evt.Source {
		case SourceRuntime:
			runtimeLines = append(runtimeLines, evt.Notification.(DebuggingOutput).Line)
		case SourceHelper:
			helper = append(helper, evt.Notification)
		}
	}

	require.NoError(t, <-done)
	assert.Equal(t, []string{"one", "two"}, runtimeLines)
	assert.Equal(t, []Notification{HelperConnected{}}, helper)
}

func TestBus_RunStopsOnCancel(t *testing.T) {
	bus := NewBus(newFakeTransport())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- bus.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	_, open := <-bus.Events()
	assert.False(t, open)
}
