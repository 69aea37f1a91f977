package nativeapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"pywalfox/internal/domain"
	"pywalfox/internal/logging"
	"pywalfox/internal/ports"
)

// Dialer opens a byte stream to a helper process.
type Dialer func(ctx context.Context) (io.ReadWriteCloser, error)

// Client implements ports.HelperClient over the native messaging framing.
type Client struct {
	callbacks ports.HelperCallbacks
	conn      io.ReadWriteCloser
	connected atomic.Bool
	dial      Dialer
	done      chan struct{}
	mu        sync.Mutex // guards conn and serializes writes
}

// Verify interface compliance at compile time
var _ ports.HelperClient = (*Client)(nil)

// NewClient creates a client that reaches the helper through dial.
func NewClient(dial Dialer) *Client {
	return &Client{dial: dial}
}

// Connect implements HelperClient.Connect
func (c *Client) Connect(ctx context.Context, callbacks ports.HelperCallbacks) error {
	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		return errors.New("helper already connected")
	}
	conn, err := c.dial(ctx)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("failed to start helper: %w", err)
	}
	c.conn = conn
	c.callbacks = callbacks
	c.done = make(chan struct{})
	c.connected.Store(true)
	done := c.done
	c.mu.Unlock()

	logging.Logger.Info("Helper connected")
	if callbacks.Connected != nil {
		callbacks.Connected()
	}

	go c.readLoop(conn, done)

	if err := c.RequestVersion(); err != nil {
		logging.Logger.Warn("Failed to request helper version", "error", err)
	}
	return nil
}

// Connected implements HelperClient.Connected
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Disconnect implements HelperClient.Disconnect
func (c *Client) Disconnect() error {
	c.mu.Lock()
	conn, done := c.conn, c.done
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	err := conn.Close()
	<-done
	return err
}

// RequestColors implements HelperClient.RequestColors
func (c *Client) RequestColors() error {
	return c.send(request{Action: ActionColors})
}

// RequestVersion implements HelperClient.RequestVersion
func (c *Client) RequestVersion() error {
	return c.send(request{Action: ActionVersion})
}

// SetCSSEnabled implements HelperClient.SetCSSEnabled
func (c *Client) SetCSSEnabled(target string, enabled bool) error {
	action := ActionCSSDisable
	if enabled {
		action = ActionCSSEnable
	}
	return c.send(request{Action: action, Target: target})
}

// SetFontSize implements HelperClient.SetFontSize
func (c *Client) SetFontSize(size int) error {
	return c.send(request{Action: ActionCSSFontSize, Size: size})
}

func (c *Client) send(req request) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || !c.connected.Load() {
		return domain.ErrHelperDisconnected
	}
	if err := WriteMessage(c.conn, req); err != nil {
		return err
	}
	logging.Logger.Debug("Helper request sent", "action", req.Action, "target", req.Target)
	return nil
}

func (c *Client) readLoop(conn io.ReadWriteCloser, done chan struct{}) {
	defer close(done)

	for {
		raw, err := ReadMessage(conn)
		if err != nil {
			reason := "helper closed the connection"
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) && !errors.Is(err, os.ErrClosed) {
				reason = err.Error()
			}
			c.disconnected(conn, reason)
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			logging.Logger.Warn("Dropping malformed helper message", "error", err)
			continue
		}
		c.dispatch(msg)
	}
}

func (c *Client) disconnected(conn io.ReadWriteCloser, reason string) {
	if !c.connected.CompareAndSwap(true, false) {
		return
	}
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.mu.Unlock()
	_ = conn.Close()

	logging.Logger.Info("Helper disconnected", "reason", reason)
	if c.callbacks.Disconnected != nil {
		c.callbacks.Disconnected(reason)
	}
}

// dispatch routes one helper message to its callback.
func (c *Client) dispatch(msg Message) {
	cb := c.callbacks
	logging.Logger.Debug("Helper message received", "action", msg.Action, "success", msg.Success)

	switch msg.Action {
	case ActionVersion:
		if !msg.Success {
			c.failed(msg)
			return
		}
		version := msg.dataString()
		if cb.Version != nil {
			cb.Version(version)
		}
		if !versionAtLeast(version, domain.MinHelperVersion) && cb.UpdateNeeded != nil {
			cb.UpdateNeeded(version)
		}
	case ActionOutput:
		if cb.Output != nil {
			cb.Output(msg.dataString())
		}
	case ActionColors:
		if !msg.Success {
			c.failed(msg)
			return
		}
		colors, err := msg.colors()
		if err != nil {
			msg.Error = err.Error()
			c.failed(msg)
			return
		}
		if cb.Colorscheme != nil {
			cb.Colorscheme(colors)
		}
	case ActionCSSEnable, ActionCSSDisable:
		if !msg.Success {
			if cb.CSSToggleFailed != nil {
				cb.CSSToggleFailed(msg.Target, msg.Error)
			}
			return
		}
		if cb.CSSToggleSuccess != nil {
			cb.CSSToggleSuccess(msg.Target, msg.Action == ActionCSSEnable)
		}
	case ActionCSSFontSize:
		if !msg.Success {
			c.failed(msg)
			return
		}
		size, err := strconv.Atoi(msg.dataString())
		if err != nil {
			msg.Error = fmt.Sprintf("invalid font size %q", msg.dataString())
			c.failed(msg)
			return
		}
		if cb.FontSizeSet != nil {
			cb.FontSizeSet(size)
		}
	case ActionThemeMode:
		mode, err := domain.ParseThemeMode(msg.dataString())
		if err != nil {
			logging.Logger.Warn("Ignoring theme mode from helper", "error", err)
			return
		}
		if cb.ThemeMode != nil {
			cb.ThemeMode(mode)
		}
	default:
		if msg.Error == "" {
			msg.Error = "helper did not recognise the request"
		}
		c.failed(msg)
	}
}

func (c *Client) failed(msg Message) {
	logging.Logger.Warn("Helper request failed", "action", msg.Action, "error", msg.Error)
	if c.callbacks.RequestFailed != nil {
		c.callbacks.RequestFailed(msg.Action, msg.Error)
	}
}
