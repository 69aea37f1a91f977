package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pywalfox/internal/config"
	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
	"pywalfox/internal/server"
	"pywalfox/internal/ui"
)

// ServeCmd serves the settings surface over SSH
type ServeCmd struct {
	RuntimeFlags `embed:""`

	AuthorizedKeys string `help:"authorized_keys file for client authentication" default:"~/.ssh/authorized_keys"`
	Host           string `help:"Address to listen on (default: settings ssh_host or localhost)"`
	Port           int    `help:"Port to listen on (default: settings ssh_port or 23235)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.apply(cli.settings)
	s.applyListener(cli.settings)

	keys, err := cli.keyBindings(ui.GetValidKeyNames())
	if err != nil {
		return err
	}

	rt, err := cli.Container.NewRuntime(s.runtimeOptions())
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		Host:               s.Host,
		HostKeyPath:        config.GetHostKeyPath(),
		Port:               s.Port,
	}, rt.Bus.Events(), func(events <-chan messaging.Event, renderer *lipgloss.Renderer) tea.Model {
		opts := s.modelOptions(keys)
		opts.PrefersDark = renderer.HasDarkBackground
		return ui.NewModel(rt.Bus, events, opts)
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Serving pywalfox over SSH", "addr", srv.Addr(), "host_key", filepath.Base(config.GetHostKeyPath()))

	if err := rt.Run(ctx, srv.Run); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// applyListener fills the listener address from settings.json
func (s *ServeCmd) applyListener(settings *config.Settings) {
	if s.Host == "" && settings != nil {
		s.Host = settings.SSHHost
	}
	if s.Host == "" {
		s.Host = config.DefaultSSHHost
	}
	if s.Port == 0 && settings != nil && settings.SSHPort != nil {
		s.Port = *settings.SSHPort
	}
	if s.Port == 0 {
		s.Port = config.DefaultSSHPort
	}
}
