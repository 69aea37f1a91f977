package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
	"pywalfox/internal/ports"
)

var (
	// ErrBackgroundBusy is returned by Post when the intent queue is full.
	ErrBackgroundBusy = errors.New("background queue is full")
	// ErrBackgroundStopped is returned by Post after Run has returned.
	ErrBackgroundStopped = errors.New("background stopped")
)

const queueSize = 64

// BackgroundService is the receiving end of the settings bus. It persists
// settings, drives the helper process and writes the browser theme, answering
// every intent on the runtime stream with the intent's correlation id.
//
// All state is owned by the Run goroutine. Helper callbacks arrive on the
// helper's reader goroutine and are funneled into the same loop.
type BackgroundService struct {
	calls       chan func()
	done        chan struct{}
	helper      ports.HelperClient
	helperOut   chan messaging.Notification
	inbox       chan messaging.Envelope
	pendingCSS  map[string]uint64 // option -> correlation id
	pendingFont []uint64
	pendingRead []uint64
	repo        ports.SettingsRepository
	runtime     chan messaging.Envelope
	sink        ports.ThemeSink
	state       domain.InitialData
	watcher     ports.ColorsWatcher
}

// Verify interface compliance at compile time
var _ messaging.Transport = (*BackgroundService)(nil)

// NewBackgroundService creates a BackgroundService. watcher may be nil.
func NewBackgroundService(
	repo ports.SettingsRepository,
	helper ports.HelperClient,
	sink ports.ThemeSink,
	watcher ports.ColorsWatcher,
) *BackgroundService {
	return &BackgroundService{
		calls:      make(chan func(), queueSize),
		done:       make(chan struct{}),
		helper:     helper,
		helperOut:  make(chan messaging.Notification, queueSize),
		inbox:      make(chan messaging.Envelope, queueSize),
		pendingCSS: make(map[string]uint64),
		repo:       repo,
		runtime:    make(chan messaging.Envelope, queueSize),
		sink:       sink,
		watcher:    watcher,
	}
}

// Helper implements messaging.Transport.Helper
func (s *BackgroundService) Helper() <-chan messaging.Notification {
	return s.helperOut
}

// Runtime implements messaging.Transport.Runtime
func (s *BackgroundService) Runtime() <-chan messaging.Envelope {
	return s.runtime
}

// Post implements messaging.Transport.Post. It never waits for the intent to be handled.
func (s *BackgroundService) Post(env messaging.Envelope) error {
	select {
	case <-s.done:
		return ErrBackgroundStopped
	default:
	}
	select {
	case s.inbox <- env:
		return nil
	default:
		return ErrBackgroundBusy
	}
}

// Run loads the stored settings, connects the helper and serves intents until
// ctx is cancelled. Both outbound streams are closed when it returns.
func (s *BackgroundService) Run(ctx context.Context) error {
	defer close(s.helperOut)
	defer close(s.runtime)

	data, err := s.repo.Load(ctx)
	if err != nil {
		close(s.done)
		return fmt.Errorf("failed to load settings: %w", err)
	}
	s.state = data

	if err := s.helper.Connect(ctx, s.helperCallbacks(ctx)); err != nil {
		logging.Logger.Warn("Helper unavailable", "error", err)
		s.emitHelper(ctx, messaging.HelperDisconnected{Reason: err.Error()})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.loop(gctx) })
	if s.watcher != nil {
		g.Go(func() error {
			err := s.watcher.Watch(gctx, func() { s.enqueue(s.refetch) })
			if err != nil {
				// Watching is best effort
				logging.Logger.Warn("Colors watcher stopped", "error", err)
			}
			return nil
		})
	}

	err = g.Wait()
	close(s.done)
	if derr := s.helper.Disconnect(); derr != nil {
		logging.Logger.Debug("Helper disconnect", "error", derr)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *BackgroundService) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env := <-s.inbox:
			s.handleEnvelope(ctx, env)
		case fn := <-s.calls:
			fn()
		}
	}
}

// enqueue runs fn on the loop goroutine. Calls after shutdown are dropped.
func (s *BackgroundService) enqueue(fn func()) {
	select {
	case s.calls <- fn:
	case <-s.done:
	}
}

func (s *BackgroundService) handleEnvelope(ctx context.Context, env messaging.Envelope) {
	in, err := messaging.DecodeIntent(env)
	if err != nil {
		logging.Logger.Warn("Rejected intent", "action", env.Action, "error", err)
		s.fail(ctx, env.CorrelationID, env.Action, "", err)
		return
	}
	logging.Logger.Debug("Handling intent", "action", env.Action, "correlation_id", env.CorrelationID)
	s.handleIntent(ctx, env.CorrelationID, in)
}

func (s *BackgroundService) handleIntent(ctx context.Context, id uint64, in messaging.Intent) {
	switch in := in.(type) {
	case messaging.GetInitialData:
		s.initialData(ctx, id)
	case messaging.Fetch:
		s.fetch(ctx, id)
	case messaging.Disable:
		s.disable(ctx)
	case messaging.SetOption:
		s.setOption(ctx, id, in)
	case messaging.SetPaletteTemplate:
		s.setPalette(ctx, id, in.Action(), in.Palette)
	case messaging.ResetPaletteTemplate:
		s.setPalette(ctx, id, in.Action(), domain.DefaultPaletteTemplate())
	case messaging.SetThemeTemplate:
		s.setBrowser(ctx, id, in.Action(), in.Browser)
	case messaging.ResetThemeTemplate:
		s.setBrowser(ctx, id, in.Action(), domain.DefaultThemeTemplate())
	case messaging.SetThemeMode:
		s.setThemeMode(ctx, id, in.Mode)
	case messaging.SetFontSize:
		s.setFontSize(ctx, id, in.Size)
	case messaging.UsePaletteAsTemplate:
		logging.Logger.Info("Ignoring use-palette-as-template, no behaviour defined")
	}
}

func (s *BackgroundService) initialData(ctx context.Context, id uint64) {
	data, err := s.repo.Load(ctx)
	if err != nil {
		s.fail(ctx, id, messaging.ActionGetInitialData, "", err)
		return
	}
	data.DebuggingInfo = s.state.DebuggingInfo
	data.DebuggingInfo.Connected = s.helper.Connected()
	s.state = data
	s.emit(ctx, id, messaging.InitialDataSet{Data: data})
}

func (s *BackgroundService) fetch(ctx context.Context, id uint64) {
	if err := s.helper.RequestColors(); err != nil {
		s.fail(ctx, id, messaging.ActionFetch, "", err)
		return
	}
	s.pendingRead = append(s.pendingRead, id)
}

// refetch asks the helper for colors on behalf of the colors watcher.
func (s *BackgroundService) refetch() {
	if !s.helper.Connected() {
		return
	}
	if err := s.helper.RequestColors(); err != nil {
		logging.Logger.Warn("Failed to refresh colors", "error", err)
	}
}

func (s *BackgroundService) disable(ctx context.Context) {
	s.state.PywalColors = nil
	s.state.Enabled = false

	if err := s.repo.SaveColors(ctx, nil); err != nil {
		logging.Logger.Error("Failed to clear colors", "error", err)
	}
	if err := s.repo.SaveEnabled(ctx, false); err != nil {
		logging.Logger.Error("Failed to save enabled flag", "error", err)
	}
	if err := s.sink.Reset(ctx); err != nil {
		logging.Logger.Error("Failed to reset theme", "error", err)
	}
}

func (s *BackgroundService) setOption(ctx context.Context, id uint64, in messaging.SetOption) {
	if domain.AsyncOptions[in.Option] {
		if err := s.helper.SetCSSEnabled(in.Option, in.Enabled); err != nil {
			s.fail(ctx, id, in.Action(), in.Option, err)
			return
		}
		s.pendingCSS[in.Option] = id
		return
	}

	if err := s.repo.SaveOption(ctx, domain.OptionData{Enabled: in.Enabled, Option: in.Option}); err != nil {
		s.fail(ctx, id, in.Action(), in.Option, err)
		return
	}
	s.emit(ctx, id, messaging.OptionSet{Enabled: in.Enabled, Option: in.Option})
}

func (s *BackgroundService) setPalette(ctx context.Context, id uint64, action string, palette domain.PaletteTemplate) {
	if err := s.state.Template.ReplacePalette(palette); err != nil {
		s.fail(ctx, id, action, "", err)
		return
	}
	if err := s.repo.SavePaletteTemplate(ctx, palette); err != nil {
		s.fail(ctx, id, action, "", err)
		return
	}
	s.applyTheme(ctx)
	s.emit(ctx, id, messaging.PaletteTemplateSet{Palette: s.state.Template.Palette.Clone()})
}

func (s *BackgroundService) setBrowser(ctx context.Context, id uint64, action string, browser domain.ThemeTemplate) {
	if err := s.repo.SaveThemeTemplate(ctx, browser); err != nil {
		s.fail(ctx, id, action, "", err)
		return
	}
	s.state.Template.SetBrowserMapping(browser)
	s.applyTheme(ctx)
	s.emit(ctx, id, messaging.ThemeTemplateSet{Browser: s.state.Template.Browser.Clone()})
}

func (s *BackgroundService) setThemeMode(ctx context.Context, id uint64, mode domain.ThemeMode) {
	if err := s.repo.SaveThemeMode(ctx, mode); err != nil {
		s.fail(ctx, id, messaging.ActionSetThemeMode, "", err)
		return
	}
	s.state.ThemeMode = mode
	s.applyTheme(ctx)
	s.emit(ctx, id, messaging.ThemeModeSet{Mode: mode})
}

func (s *BackgroundService) setFontSize(ctx context.Context, id uint64, size int) {
	if size < domain.MinFontSize || size > domain.MaxFontSize {
		s.fail(ctx, id, messaging.ActionSetFontSize, "", fmt.Errorf("font size %d out of range %d-%d", size, domain.MinFontSize, domain.MaxFontSize))
		return
	}
	if err := s.helper.SetFontSize(size); err != nil {
		s.fail(ctx, id, messaging.ActionSetFontSize, "", err)
		return
	}
	s.pendingFont = append(s.pendingFont, id)
}

// applyTheme rebuilds the browser theme from the current palette and template.
func (s *BackgroundService) applyTheme(ctx context.Context) {
	if s.state.PywalColors == nil || !s.state.Enabled {
		return
	}
	theme, err := domain.BuildBrowserTheme(s.state.Template, *s.state.PywalColors)
	if err != nil {
		logging.Logger.Warn("Theme built with unresolved keys", "error", err)
	}
	mode := s.state.ThemeMode
	if mode == "" {
		mode = domain.ThemeModeDark
	}
	if err := s.sink.Apply(ctx, theme, mode); err != nil {
		logging.Logger.Error("Failed to apply theme", "error", err)
		s.emit(ctx, 0, messaging.DebuggingOutput{Line: "Failed to apply theme: " + err.Error()})
	}
}

func (s *BackgroundService) emit(ctx context.Context, id uint64, n messaging.Notification) {
	env, err := messaging.EncodeNotification(n, id)
	if err != nil {
		logging.Logger.Error("Failed to encode notification", "type", fmt.Sprintf("%T", n), "error", err)
		return
	}
	select {
	case s.runtime <- env:
	case <-ctx.Done():
	}
}

func (s *BackgroundService) emitHelper(ctx context.Context, n messaging.Notification) {
	select {
	case s.helperOut <- n:
	case <-ctx.Done():
	}
}

func (s *BackgroundService) fail(ctx context.Context, id uint64, action, option string, err error) {
	logging.Logger.Warn("Request failed", "action", action, "correlation_id", id, "error", err)
	s.emit(ctx, id, messaging.RequestFailed{Action: action, Error: err.Error(), Option: option})
}

// popID removes and returns the oldest id in ids, or 0 when ids is empty.
func popID(ids *[]uint64) uint64 {
	if len(*ids) == 0 {
		return 0
	}
	id := (*ids)[0]
	*ids = (*ids)[1:]
	return id
}
