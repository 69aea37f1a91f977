package services

import (
	"context"
	"errors"

	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
	"pywalfox/internal/ports"
)

// helperCallbacks routes every helper callback onto the loop goroutine.
func (s *BackgroundService) helperCallbacks(ctx context.Context) ports.HelperCallbacks {
	return ports.HelperCallbacks{
		Colorscheme: func(colors domain.PaletteColors) {
			s.enqueue(func() { s.colorsReceived(ctx, colors) })
		},
		Connected: func() {
			s.enqueue(func() {
				s.state.DebuggingInfo.Connected = true
				s.emitHelper(ctx, messaging.HelperConnected{})
			})
		},
		CSSToggleFailed: func(target, reason string) {
			s.enqueue(func() {
				id := s.pendingCSS[target]
				delete(s.pendingCSS, target)
				s.fail(ctx, id, messaging.ActionSetOption, target, errors.New(reason))
			})
		},
		CSSToggleSuccess: func(target string, enabled bool) {
			s.enqueue(func() { s.cssToggled(ctx, target, enabled) })
		},
		Disconnected: func(reason string) {
			s.enqueue(func() { s.helperDisconnected(ctx, reason) })
		},
		FontSizeSet: func(size int) {
			s.enqueue(func() { s.fontSizeSet(ctx, size) })
		},
		Output: func(line string) {
			s.enqueue(func() { s.emit(ctx, 0, messaging.DebuggingOutput{Line: line}) })
		},
		RequestFailed: func(action, reason string) {
			s.enqueue(func() { s.helperRequestFailed(ctx, action, reason) })
		},
		ThemeMode: func(mode domain.ThemeMode) {
			s.enqueue(func() { s.setThemeMode(ctx, 0, mode) })
		},
		UpdateNeeded: func(version string) {
			s.enqueue(func() {
				s.emitHelper(ctx, messaging.HelperUpdateNeeded{Minimum: domain.MinHelperVersion, Version: version})
			})
		},
		Version: func(version string) {
			s.enqueue(func() {
				s.state.DebuggingInfo.Version = version
				s.emitHelper(ctx, messaging.HelperVersion{Version: version})
			})
		},
	}
}

func (s *BackgroundService) colorsReceived(ctx context.Context, colors domain.PaletteColors) {
	s.state.PywalColors = &colors
	s.state.Enabled = true

	if err := s.repo.SaveColors(ctx, &colors); err != nil {
		logging.Logger.Error("Failed to save colors", "error", err)
	}
	if err := s.repo.SaveEnabled(ctx, true); err != nil {
		logging.Logger.Error("Failed to save enabled flag", "error", err)
	}
	s.applyTheme(ctx)
	s.emit(ctx, popID(&s.pendingRead), messaging.PywalColorsSet{Colors: colors})
}

func (s *BackgroundService) cssToggled(ctx context.Context, target string, enabled bool) {
	id := s.pendingCSS[target]
	delete(s.pendingCSS, target)

	if err := s.repo.SaveOption(ctx, domain.OptionData{Enabled: enabled, Option: target}); err != nil {
		s.fail(ctx, id, messaging.ActionSetOption, target, err)
		return
	}
	s.emit(ctx, id, messaging.OptionSet{Enabled: enabled, Option: target})
}

func (s *BackgroundService) fontSizeSet(ctx context.Context, size int) {
	if err := s.repo.SaveFontSize(ctx, size); err != nil {
		logging.Logger.Error("Failed to save font size", "error", err)
	}
	s.state.FontSize = size
	s.emit(ctx, popID(&s.pendingFont), messaging.FontSizeSet{Size: size})
}

// helperRequestFailed maps a helper action back to the intent that caused it.
func (s *BackgroundService) helperRequestFailed(ctx context.Context, action, reason string) {
	var id uint64
	switch action {
	case "action:colors":
		id, action = popID(&s.pendingRead), messaging.ActionFetch
	case "css:font:size":
		id, action = popID(&s.pendingFont), messaging.ActionSetFontSize
	}
	s.fail(ctx, id, action, "", errors.New(reason))
}

// helperDisconnected fails every request still waiting on the helper.
func (s *BackgroundService) helperDisconnected(ctx context.Context, reason string) {
	s.state.DebuggingInfo.Connected = false
	s.emitHelper(ctx, messaging.HelperDisconnected{Reason: reason})

	for len(s.pendingRead) > 0 {
		s.fail(ctx, popID(&s.pendingRead), messaging.ActionFetch, "", domain.ErrHelperDisconnected)
	}
	for len(s.pendingFont) > 0 {
		s.fail(ctx, popID(&s.pendingFont), messaging.ActionSetFontSize, "", domain.ErrHelperDisconnected)
	}
	for option, id := range s.pendingCSS {
		s.fail(ctx, id, messaging.ActionSetOption, option, domain.ErrHelperDisconnected)
		delete(s.pendingCSS, option)
	}
}
