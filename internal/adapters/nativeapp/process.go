package nativeapp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"pywalfox/internal/logging"
)

// exitGrace is how long Close waits for the helper to exit once its input is
// closed before killing it.
var exitGrace = 3 * time.Second

// processConn is the stdio of a running helper process. stdout is a pipe owned
// here rather than by exec, so Wait never closes it under a blocked reader:
// the reader sees EOF when the helper exits and the read end is closed after.
type processConn struct {
	closeErr  error
	closeOnce sync.Once
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *os.File
}

func (p *processConn) Read(b []byte) (int, error)  { return p.stdout.Read(b) }
func (p *processConn) Write(b []byte) (int, error) { return p.stdin.Write(b) }

// Close ends the helper's input and waits for it to exit, killing it after
// exitGrace.
func (p *processConn) Close() error {
	p.closeOnce.Do(func() {
		_ = p.stdin.Close()

		exited := make(chan error, 1)
		go func() { exited <- p.cmd.Wait() }()

		timer := time.NewTimer(exitGrace)
		defer timer.Stop()

		var err error
		select {
		case err = <-exited:
		case <-timer.C:
			logging.Logger.Warn("Helper did not exit after its input closed, killing it")
			_ = p.cmd.Process.Kill()
			err = <-exited
		}
		_ = p.stdout.Close()

		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			p.closeErr = fmt.Errorf("helper exited with error: %w", err)
		}
	})
	return p.closeErr
}

// ProcessDialer starts path with args and speaks to it over stdin/stdout.
// The helper's stderr is forwarded to the debug log.
func ProcessDialer(path string, args ...string) Dialer {
	return func(ctx context.Context) (io.ReadWriteCloser, error) {
		logging.Logger.Debug("Starting helper", "path", path, "args", args)

		cmd := exec.CommandContext(ctx, path, args...)
		cmd.Stderr = &stderrLog{}

		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, fmt.Errorf("failed to create stdin pipe: %w", err)
		}
		stdoutR, stdoutW, err := os.Pipe()
		if err != nil {
			stdin.Close()
			return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
		}
		cmd.Stdout = stdoutW

		if err := cmd.Start(); err != nil {
			stdin.Close()
			stdoutR.Close()
			stdoutW.Close()
			return nil, fmt.Errorf("failed to start helper %s: %w", path, err)
		}
		// The child holds its own copy; ours would keep EOF from arriving
		stdoutW.Close()

		return &processConn{cmd: cmd, stdin: stdin, stdout: stdoutR}, nil
	}
}

// stderrLog writes each complete line of helper stderr to the debug log.
type stderrLog struct {
	buf bytes.Buffer
}

func (s *stderrLog) Write(p []byte) (int, error) {
	s.buf.Write(p)
	for {
		line, err := s.buf.ReadBytes('\n')
		if err != nil {
			// Keep the partial line for the next write
			s.buf.Write(line)
			return len(p), nil
		}
		logging.Logger.Debug("Helper stderr", "line", string(bytes.TrimRight(line, "\r\n")))
	}
}
