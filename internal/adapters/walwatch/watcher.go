package walwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"pywalfox/internal/logging"
	"pywalfox/internal/ports"
)

// DefaultDebounce coalesces the burst of events pywal produces while rewriting its cache.
const DefaultDebounce = 300 * time.Millisecond

// DefaultCachePath returns pywal's colors.json under the user cache directory.
func DefaultCachePath() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "wal", "colors.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cache", "wal", "colors.json")
	}
	return filepath.Join(home, ".cache", "wal", "colors.json")
}

// Watcher signals when pywal regenerates its colors file.
type Watcher struct {
	debounce time.Duration
	path     string
}

// Verify interface compliance at compile time
var _ ports.ColorsWatcher = (*Watcher)(nil)

// New creates a watcher for the colors file at path. A leading ~ is expanded.
func New(path string, debounce time.Duration) (*Watcher, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce, path: filepath.Clean(path)}, nil
}

// Watch implements ColorsWatcher.Watch. The directory is watched rather than the file
// because pywal replaces the file on every run.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logging.Logger.Info("Watching wal cache", "path", w.path)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				if _, err := os.Stat(w.path); err != nil {
					return
				}
				logging.Logger.Debug("Wal cache changed", "path", w.path)
				onChange()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Warn("Wal cache watcher error", "error", err)
		}
	}
}
