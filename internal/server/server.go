// Package server exposes the settings surface over SSH. One session may be
// attached at a time because every session drives the same background.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"pywalfox/internal/logging"
	"pywalfox/internal/messaging"
)

const shutdownTimeout = 10 * time.Second

// Config holds the listener settings.
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	Port               int
}

// ModelFactory builds the surface for one session. renderer is bound to the
// session's terminal.
type ModelFactory func(events <-chan messaging.Event, renderer *lipgloss.Renderer) tea.Model

// Server serves the settings surface to one SSH client at a time.
type Server struct {
	addr     string
	newModel ModelFactory
	relay    *relay
	source   <-chan messaging.Event
	wish     *ssh.Server
}

// New creates the server. Bus events from source go to the attached session.
func New(cfg Config, source <-chan messaging.Event, newModel ModelFactory) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		newModel: newModel,
		relay:    &relay{},
		source:   source,
	}

	// Middleware executes in reverse order (last to first)
	srv, err := wish.NewServer(
		wish.WithAddress(s.addr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(publicKeyHandler(cfg.AuthorizedKeysPath)),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}
	s.wish = srv
	return s, nil
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	relayDone := make(chan struct{})
	go func() {
		defer close(relayDone)
		_ = s.relay.run(ctx, s.source)
	}()

	serveErr := make(chan error, 1)
	go func() {
		logging.Logger.Info("Starting SSH server", "address", s.addr)
		serveErr <- s.wish.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.wish.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	<-relayDone
	logging.Logger.Info("SSH server stopped")
	return nil
}

// teaHandler attaches the session to the relay and builds its model.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := uuid.NewString()

	logger := logging.Logger.With("session_id", sessionID)
	logger.Info("New SSH session",
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	events, err := s.relay.attach(sessionID, sess.Context().Done())
	if err != nil {
		logger.Warn("Rejecting SSH session", "error", err)
		return errorModel{err: err}, nil
	}

	start := time.Now()
	go func() {
		<-sess.Context().Done()
		logger.Info("SSH session ended", "duration", time.Since(start).String())
	}()

	return s.newModel(events, bubbletea.MakeRenderer(sess)), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel displays an error and quits on the first message.
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return e, tea.Quit
	}
	return e, nil
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n\nPress any key to disconnect.\n", e.err)
}
