package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pywalfox/internal/domain"
	"pywalfox/internal/messaging"
	"pywalfox/internal/view"
)

type sentIntent struct {
	id     uint64
	intent messaging.Intent
}

type fakeSender struct {
	err    error
	lastID uint64
	sent   []sentIntent
}

func (f *fakeSender) Send(in messaging.Intent) (uint64, error) {
	f.lastID++
	if f.err != nil {
		return f.lastID, f.err
	}
	f.sent = append(f.sent, sentIntent{id: f.lastID, intent: in})
	return f.lastID, nil
}

func (f *fakeSender) last(t *testing.T) sentIntent {
	t.Helper()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1]
}

type frameRecorder struct {
	frames []view.Frame
}

func (r *frameRecorder) Render(frame view.Frame) {
	r.frames = append(r.frames, frame)
}

func (r *frameRecorder) last(t *testing.T) view.Frame {
	t.Helper()
	require.NotEmpty(t, r.frames)
	return r.frames[len(r.frames)-1]
}

// stateSurface tracks visibility and selection like a DOM would.
type stateSurface struct {
	selected map[string]bool
	visible  map[string]bool
}

func newStateSurface() *stateSurface {
	return &stateSurface{selected: map[string]bool{}, visible: map[string]bool{}}
}

func (s *stateSurface) Deselect(element string) { delete(s.selected, element) }
func (s *stateSurface) Hide(element string)     { delete(s.visible, element) }
func (s *stateSurface) Select(element string)   { s.selected[element] = true }
func (s *stateSurface) Show(element string)     { s.visible[element] = true }

type harness struct {
	ctrl    *Controller
	frames  *frameRecorder
	now     time.Time
	sender  *fakeSender
	surface *stateSurface
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		frames:  &frameRecorder{},
		now:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		sender:  &fakeSender{},
		surface: newStateSurface(),
	}
	h.ctrl = New(h.sender, h.surface, h.frames, Config{LogLines: 10, RequestTimeout: 5 * time.Second})
	h.ctrl.clock = func() time.Time { return h.now }
	return h
}

func (h *harness) runtime(n messaging.Notification, id uint64) {
	h.ctrl.Handle(messaging.Event{CorrelationID: id, Notification: n, Source: messaging.SourceRuntime})
}

func (h *harness) helper(n messaging.Notification) {
	h.ctrl.Handle(messaging.Event{Notification: n, Source: messaging.SourceHelper})
}

func testColors(t *testing.T) domain.PaletteColors {
	t.Helper()
	raw := make([]string, domain.PaletteLength)
	for i := range raw {
		raw[i] = "#0000" + "0123456789abcdefgh"[i:i+1] + "0"
	}
	raw[16], raw[17] = "#101010", "#202020"
	colors, err := domain.NewPaletteColors(raw)
	require.NoError(t, err)
	return colors
}

var errSendFailed = errors.New("port closed")
