package themefile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
	"pywalfox/internal/ports"
)

// DefaultFileName is the theme file written inside PYWALFOX_HOME.
const DefaultFileName = "theme.json"

// document is the on-disk theme format read by the browser side.
type document struct {
	Colors domain.BrowserTheme `json:"colors"`
	Mode   domain.ThemeMode    `json:"mode"`
}

// Sink writes finished browser themes to a JSON file. Writes replace the file
// atomically, so readers never observe a partial theme.
type Sink struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.ThemeSink = (*Sink)(nil)

// New creates a sink writing to path.
func New(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the file the sink writes.
func (s *Sink) Path() string {
	return s.path
}

// Apply implements ThemeSink.Apply
func (s *Sink) Apply(ctx context.Context, theme domain.BrowserTheme, mode domain.ThemeMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create theme directory: %w", err)
	}

	data, err := json.MarshalIndent(document{Colors: theme, Mode: mode}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}

	logging.Logger.Debug("Theme written", "path", s.path, "keys", len(theme), "mode", mode)
	return nil
}

// Reset implements ThemeSink.Reset by removing the theme file.
func (s *Sink) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove theme: %w", err)
	}
	logging.Logger.Debug("Theme reset", "path", s.path)
	return nil
}
