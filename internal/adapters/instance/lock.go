package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pywalfox/internal/logging"
)

// LockFileName is the lock file created inside PYWALFOX_HOME.
const LockFileName = "pywalfox.lock"

// ErrAlreadyRunning is returned when another process holds the lock.
var ErrAlreadyRunning = errors.New("another pywalfox instance is running")

// Lock is an exclusive, process-wide lock on a file. Only one settings surface may
// drive the helper at a time.
type Lock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path without blocking.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		file.Close()
		if errors.Is(err, errWouldBlock) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	// The pid is informational only
	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	logging.Logger.Debug("Instance lock acquired", "path", path)
	return &Lock{file: file, path: path}, nil
}

// Release drops the lock. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := unlock(l.file)
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	l.file = nil
	logging.Logger.Debug("Instance lock released", "path", l.path)
	return err
}
