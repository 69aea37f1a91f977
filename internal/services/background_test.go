package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pywalfox/internal/domain"
	"pywalfox/internal/messaging"
	"pywalfox/internal/ports"
	portsmocks "pywalfox/internal/ports/mocks"
)

type backgroundHarness struct {
	callbacks ports.HelperCallbacks
	helper    *portsmocks.MockHelperClient
	repo      *portsmocks.MockSettingsRepository
	sink      *portsmocks.MockThemeSink
	svc       *BackgroundService
}

func testPalette(t *testing.T) domain.PaletteColors {
	t.Helper()
	list := make([]string, domain.PaletteLength)
	for i := range list {
		list[i] = fmt.Sprintf("#%02x%02x%02x", i, i, i)
	}
	colors, err := domain.NewPaletteColors(list)
	require.NoError(t, err)
	return colors
}

func storedData() domain.InitialData {
	return domain.InitialData{
		Template:  domain.DefaultTemplate(),
		ThemeMode: domain.ThemeModeDark,
	}
}

func startBackground(t *testing.T, data domain.InitialData, watcher ports.ColorsWatcher) *backgroundHarness {
	t.Helper()
	h := &backgroundHarness{
		helper: portsmocks.NewMockHelperClient(t),
		repo:   portsmocks.NewMockSettingsRepository(t),
		sink:   portsmocks.NewMockThemeSink(t),
	}

	connected := make(chan ports.HelperCallbacks, 1)
	h.repo.EXPECT().Load(mock.Anything).Return(data, nil).Once()
	h.helper.EXPECT().Connect(mock.Anything, mock.Anything).
		Run(func(_ context.Context, cb ports.HelperCallbacks) { connected <- cb }).
		Return(nil)
	h.helper.EXPECT().Disconnect().Return(nil)

	h.svc = NewBackgroundService(h.repo, h.helper, h.sink, watcher)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.svc.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	select {
	case h.callbacks = <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("helper was never connected")
	}
	return h
}

// called returns a channel closed by the first invocation of the returned func.
func called() (chan struct{}, func()) {
	ch := make(chan struct{})
	var once sync.Once
	return ch, func() { once.Do(func() { close(ch) }) }
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected call did not happen")
	}
}

func (h *backgroundHarness) post(t *testing.T, in messaging.Intent, id uint64) {
	t.Helper()
	env, err := messaging.EncodeIntent(in, id)
	require.NoError(t, err)
	require.NoError(t, h.svc.Post(env))
}

func (h *backgroundHarness) next(t *testing.T) messaging.Event {
	t.Helper()
	select {
	case env := <-h.svc.Runtime():
		evt, err := messaging.Decode(env)
		require.NoError(t, err)
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("no runtime notification")
		return messaging.Event{}
	}
}

func (h *backgroundHarness) nextHelper(t *testing.T) messaging.Notification {
	t.Helper()
	select {
	case n := <-h.svc.Helper():
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("no helper notification")
		return nil
	}
}

func TestBackground_GetInitialData(t *testing.T) {
	h := startBackground(t, storedData(), nil)

	stored := storedData()
	stored.Options = []domain.OptionData{{Enabled: true, Option: domain.OptionDuckDuckGo}}
	h.repo.EXPECT().Load(mock.Anything).Return(stored, nil).Once()
	h.helper.EXPECT().Connected().Return(true)

	h.post(t, messaging.GetInitialData{}, 7)

	evt := h.next(t)
	assert.Equal(t, uint64(7), evt.CorrelationID)
	data := evt.Notification.(messaging.InitialDataSet).Data
	assert.True(t, data.DebuggingInfo.Connected)
	assert.Equal(t, stored.Options, data.Options)
}

func TestBackground_FetchAppliesTheme(t *testing.T) {
	h := startBackground(t, storedData(), nil)
	colors := testPalette(t)

	requested, done := called()
	h.helper.EXPECT().RequestColors().Run(done).Return(nil).Once()
	h.repo.EXPECT().SaveColors(mock.Anything, &colors).Return(nil)
	h.repo.EXPECT().SaveEnabled(mock.Anything, true).Return(nil)
	h.sink.EXPECT().Apply(mock.Anything, mock.MatchedBy(func(theme domain.BrowserTheme) bool {
		return theme["frame"] != "" && len(theme) > 0
	}), domain.ThemeModeDark).Return(nil)

	h.post(t, messaging.Fetch{}, 3)
	waitFor(t, requested)
	h.callbacks.Colorscheme(colors)

	evt := h.next(t)
	assert.Equal(t, uint64(3), evt.CorrelationID)
	assert.Equal(t, messaging.PywalColorsSet{Colors: colors}, evt.Notification)
}

func TestBackground_FetchWithoutHelper(t *testing.T) {
	h := startBackground(t, storedData(), nil)
	h.helper.EXPECT().RequestColors().Return(domain.ErrHelperDisconnected)

	h.post(t, messaging.Fetch{}, 4)

	evt := h.next(t)
	assert.Equal(t, uint64(4), evt.CorrelationID)
	failed := evt.Notification.(messaging.RequestFailed)
	assert.Equal(t, messaging.ActionFetch, failed.Action)
	assert.Equal(t, domain.ErrHelperDisconnected.Error(), failed.Error)
}

func TestBackground_HelperColorsFailure(t *testing.T) {
	h := startBackground(t, storedData(), nil)
	requested, done := called()
	h.helper.EXPECT().RequestColors().Run(done).Return(nil)

	h.post(t, messaging.Fetch{}, 5)
	waitFor(t, requested)
	h.callbacks.RequestFailed("action:colors", "wal cache missing")

	evt := h.next(t)
	assert.Equal(t, uint64(5), evt.CorrelationID)
	assert.Equal(t, messaging.RequestFailed{Action: messaging.ActionFetch, Error: "wal cache missing"}, evt.Notification)
}

func TestBackground_SetOption(t *testing.T) {
	t.Run("synchronous option is saved and confirmed", func(t *testing.T) {
		h := startBackground(t, storedData(), nil)
		h.repo.EXPECT().SaveOption(mock.Anything, domain.OptionData{Enabled: true, Option: domain.OptionDuckDuckGo}).Return(nil)

		h.post(t, messaging.SetOption{Enabled: true, Option: domain.OptionDuckDuckGo}, 9)

		evt := h.next(t)
		assert.Equal(t, uint64(9), evt.CorrelationID)
		assert.Equal(t, messaging.OptionSet{Enabled: true, Option: domain.OptionDuckDuckGo}, evt.Notification)
	})

	t.Run("css option confirmed by helper", func(t *testing.T) {
		h := startBackground(t, storedData(), nil)
		toggled, done := called()
		h.helper.EXPECT().SetCSSEnabled(domain.OptionUserChrome, true).Run(func(string, bool) { done() }).Return(nil)
		h.repo.EXPECT().SaveOption(mock.Anything, domain.OptionData{Enabled: true, Option: domain.OptionUserChrome}).Return(nil)

		h.post(t, messaging.SetOption{Enabled: true, Option: domain.OptionUserChrome}, 11)
		waitFor(t, toggled)
		h.callbacks.CSSToggleSuccess(domain.OptionUserChrome, true)

		evt := h.next(t)
		assert.Equal(t, uint64(11), evt.CorrelationID)
		assert.Equal(t, messaging.OptionSet{Enabled: true, Option: domain.OptionUserChrome}, evt.Notification)
	})

	t.Run("css option rejected by helper", func(t *testing.T) {
		h := startBackground(t, storedData(), nil)
		toggled, done := called()
		h.helper.EXPECT().SetCSSEnabled(domain.OptionUserContent, false).Run(func(string, bool) { done() }).Return(nil)

		h.post(t, messaging.SetOption{Enabled: false, Option: domain.OptionUserContent}, 12)
		waitFor(t, toggled)
		h.callbacks.CSSToggleFailed(domain.OptionUserContent, "chrome folder not found")

		evt := h.next(t)
		assert.Equal(t, uint64(12), evt.CorrelationID)
		assert.Equal(t, messaging.RequestFailed{
			Action: messaging.ActionSetOption,
			Error:  "chrome folder not found",
			Option: domain.OptionUserContent,
		}, evt.Notification)
	})
}

func TestBackground_PaletteTemplate(t *testing.T) {
	t.Run("invalid palette is rejected before saving", func(t *testing.T) {
		h := startBackground(t, storedData(), nil)

		h.post(t, messaging.SetPaletteTemplate{Palette: domain.PaletteTemplate{domain.RoleBackground: 99}}, 13)

		evt := h.next(t)
		failed := evt.Notification.(messaging.RequestFailed)
		assert.Equal(t, messaging.ActionSetPaletteTemplate, failed.Action)
		assert.Contains(t, failed.Error, domain.ErrInvalidIndex.Error())
	})

	t.Run("reset saves and rethemes", func(t *testing.T) {
		colors := testPalette(t)
		data := storedData()
		data.Enabled = true
		data.PywalColors = &colors
		data.Template.Palette[domain.RoleBackground] = 3

		h := startBackground(t, data, nil)
		h.repo.EXPECT().SavePaletteTemplate(mock.Anything, domain.DefaultPaletteTemplate()).Return(nil)
		h.sink.EXPECT().Apply(mock.Anything, mock.Anything, domain.ThemeModeDark).Return(nil)

		h.post(t, messaging.ResetPaletteTemplate{}, 14)

		evt := h.next(t)
		assert.Equal(t, uint64(14), evt.CorrelationID)
		assert.Equal(t, messaging.PaletteTemplateSet{Palette: domain.DefaultPaletteTemplate()}, evt.Notification)
	})
}

func TestBackground_ResetThemeTemplateWithoutColors(t *testing.T) {
	h := startBackground(t, storedData(), nil)
	h.repo.EXPECT().SaveThemeTemplate(mock.Anything, domain.DefaultThemeTemplate()).Return(nil)

	h.post(t, messaging.ResetThemeTemplate{}, 15)

	evt := h.next(t)
	assert.Equal(t, messaging.ThemeTemplateSet{Browser: domain.DefaultThemeTemplate()}, evt.Notification)
	h.sink.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestBackground_SetThemeMode(t *testing.T) {
	colors := testPalette(t)
	data := storedData()
	data.Enabled = true
	data.PywalColors = &colors

	h := startBackground(t, data, nil)
	h.repo.EXPECT().SaveThemeMode(mock.Anything, domain.ThemeModeLight).Return(nil)
	h.sink.EXPECT().Apply(mock.Anything, mock.Anything, domain.ThemeModeLight).Return(nil)

	h.post(t, messaging.SetThemeMode{Mode: domain.ThemeModeLight}, 16)

	evt := h.next(t)
	assert.Equal(t, uint64(16), evt.CorrelationID)
	assert.Equal(t, messaging.ThemeModeSet{Mode: domain.ThemeModeLight}, evt.Notification)
}

func TestBackground_SetFontSize(t *testing.T) {
	h := startBackground(t, storedData(), nil)
	sent, done := called()
	h.helper.EXPECT().SetFontSize(14).Run(func(int) { done() }).Return(nil)
	h.repo.EXPECT().SaveFontSize(mock.Anything, 14).Return(nil)

	h.post(t, messaging.SetFontSize{Size: 14}, 17)
	waitFor(t, sent)
	h.callbacks.FontSizeSet(14)

	evt := h.next(t)
	assert.Equal(t, uint64(17), evt.CorrelationID)
	assert.Equal(t, messaging.FontSizeSet{Size: 14}, evt.Notification)

	h.post(t, messaging.SetFontSize{Size: 99}, 18)

	evt = h.next(t)
	assert.Equal(t, uint64(18), evt.CorrelationID)
	assert.IsType(t, messaging.RequestFailed{}, evt.Notification)
}

func TestBackground_DisableClearsTheme(t *testing.T) {
	colors := testPalette(t)
	data := storedData()
	data.Enabled = true
	data.PywalColors = &colors

	h := startBackground(t, data, nil)
	h.repo.EXPECT().SaveColors(mock.Anything, mock.MatchedBy(func(c *domain.PaletteColors) bool { return c == nil })).Return(nil)
	h.repo.EXPECT().SaveEnabled(mock.Anything, false).Return(nil)
	h.sink.EXPECT().Reset(mock.Anything).Return(nil)

	h.post(t, messaging.Disable{}, 19)
	h.post(t, messaging.UsePaletteAsTemplate{}, 20)

	// Neither intent is answered; the next reply belongs to a later request
	h.helper.EXPECT().RequestColors().Return(domain.ErrHelperDisconnected)
	h.post(t, messaging.Fetch{}, 21)

	evt := h.next(t)
	assert.Equal(t, uint64(21), evt.CorrelationID)
}

func TestBackground_UnknownIntent(t *testing.T) {
	h := startBackground(t, storedData(), nil)

	require.NoError(t, h.svc.Post(messaging.Envelope{Action: "open-popup", CorrelationID: 22}))

	evt := h.next(t)
	assert.Equal(t, uint64(22), evt.CorrelationID)
	failed := evt.Notification.(messaging.RequestFailed)
	assert.Equal(t, "open-popup", failed.Action)
	assert.Contains(t, failed.Error, domain.ErrUnknownAction.Error())
}

func TestBackground_HelperLifecycle(t *testing.T) {
	h := startBackground(t, storedData(), nil)

	h.callbacks.Connected()
	assert.Equal(t, messaging.HelperConnected{}, h.nextHelper(t))

	h.callbacks.Version("2.1")
	h.callbacks.UpdateNeeded("2.1")
	assert.Equal(t, messaging.HelperVersion{Version: "2.1"}, h.nextHelper(t))
	assert.Equal(t, messaging.HelperUpdateNeeded{Minimum: domain.MinHelperVersion, Version: "2.1"}, h.nextHelper(t))

	h.callbacks.Output("Using wal cache")
	evt := h.next(t)
	assert.Zero(t, evt.CorrelationID)
	assert.Equal(t, messaging.DebuggingOutput{Line: "Using wal cache"}, evt.Notification)
}

func TestBackground_DisconnectFailsPendingRequests(t *testing.T) {
	h := startBackground(t, storedData(), nil)
	h.helper.EXPECT().RequestColors().Return(nil)
	toggled, done := called()
	h.helper.EXPECT().SetCSSEnabled(domain.OptionUserChrome, true).Run(func(string, bool) { done() }).Return(nil)

	h.post(t, messaging.Fetch{}, 30)
	h.post(t, messaging.SetOption{Enabled: true, Option: domain.OptionUserChrome}, 31)
	waitFor(t, toggled)
	h.callbacks.Disconnected("helper closed the connection")

	assert.Equal(t, messaging.HelperDisconnected{Reason: "helper closed the connection"}, h.nextHelper(t))

	failed := map[uint64]messaging.RequestFailed{}
	for range 2 {
		evt := h.next(t)
		failed[evt.CorrelationID] = evt.Notification.(messaging.RequestFailed)
	}
	assert.Equal(t, messaging.ActionFetch, failed[30].Action)
	assert.Equal(t, domain.OptionUserChrome, failed[31].Option)
	assert.Equal(t, domain.ErrHelperDisconnected.Error(), failed[31].Error)
}

func TestBackground_WatcherRefetches(t *testing.T) {
	ready := make(chan struct{})
	watcher := portsmocks.NewMockColorsWatcher(t)
	watcher.EXPECT().Watch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, onChange func()) error {
			<-ready
			onChange()
			<-ctx.Done()
			return nil
		})

	h := startBackground(t, storedData(), watcher)
	requested, done := called()
	h.helper.EXPECT().Connected().Return(true)
	h.helper.EXPECT().RequestColors().Run(done).Return(nil)
	close(ready)

	waitFor(t, requested)
}

func TestBackground_PostAfterStop(t *testing.T) {
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(domain.InitialData{}, assert.AnError)

	svc := NewBackgroundService(repo, portsmocks.NewMockHelperClient(t), portsmocks.NewMockThemeSink(t), nil)

	err := svc.Run(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, svc.Post(messaging.Envelope{Action: messaging.ActionFetch}), ErrBackgroundStopped)
}
