package cmd

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pywalfox/internal/adapters/instance"
	"pywalfox/internal/adapters/nativeapp"
	adapterstorage "pywalfox/internal/adapters/storage"
	"pywalfox/internal/adapters/themefile"
	"pywalfox/internal/adapters/walwatch"
	"pywalfox/internal/config"
	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
	"pywalfox/internal/ports"
	"pywalfox/internal/services"
)

// Container holds the dependencies shared by every command
type Container struct {
	Repository *adapterstorage.SQLiteRepository
}

// NewContainer opens the settings database
func NewContainer() (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}
	return &Container{Repository: repo}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Repository != nil {
		return c.Repository.Close()
	}
	return nil
}

// RuntimeOptions selects the collaborators of a live session
type RuntimeOptions struct {
	HelperArgs   []string
	HelperPath   string
	ThemeOutput  string
	WalCachePath string
	WatchWal     bool
}

// Runtime is the background service and the bus on top of it. Only one
// runtime may exist per PYWALFOX_HOME.
type Runtime struct {
	Background *services.BackgroundService
	Bus        *messaging.Bus
	lock       *instance.Lock
}

// NewRuntime takes the instance lock and wires the background to the helper,
// the theme file and the optional wal cache watcher.
func (c *Container) NewRuntime(opts RuntimeOptions) (*Runtime, error) {
	lock, err := instance.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, instance.ErrAlreadyRunning) {
			return nil, fmt.Errorf("%w (lock: %s)", err, config.GetLockPath())
		}
		return nil, err
	}

	var watcher ports.ColorsWatcher
	if opts.WatchWal {
		w, err := walwatch.New(opts.WalCachePath, walwatch.DefaultDebounce)
		if err != nil {
			lock.Release()
			return nil, err
		}
		watcher = w
	}

	helper := nativeapp.NewClient(nativeapp.ProcessDialer(opts.HelperPath, opts.HelperArgs...))
	background := services.NewBackgroundService(c.Repository, helper, themefile.New(opts.ThemeOutput), watcher)

	logging.Logger.Info("Runtime created",
		"helper", opts.HelperPath,
		"theme_output", opts.ThemeOutput,
		"watch_wal", opts.WatchWal)

	return &Runtime{
		Background: background,
		Bus:        messaging.NewBus(background),
		lock:       lock,
	}, nil
}

// Run starts the background and the bus, then blocks in surface. Returning
// from surface stops everything else.
func (r *Runtime) Run(ctx context.Context, surface func(ctx context.Context) error) error {
	defer func() {
		if err := r.lock.Release(); err != nil {
			logging.Logger.Warn("Failed to release instance lock", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.Background.Run(gctx) })
	g.Go(func() error { return r.Bus.Run(gctx) })
	g.Go(func() error {
		defer cancel()
		return surface(gctx)
	})
	return g.Wait()
}
