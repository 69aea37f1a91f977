package config

import (
	"os"
	"path/filepath"
)

// GetPywalfoxHome returns PYWALFOX_HOME or the ~/.pywalfox default
func GetPywalfoxHome() string {
	home := os.Getenv("PYWALFOX_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".pywalfox"
		}
		return filepath.Join(homeDir, ".pywalfox")
	}
	return ExpandPath(home)
}

// GetDBPath returns $PYWALFOX_HOME/settings.db
func GetDBPath() string {
	return filepath.Join(GetPywalfoxHome(), "settings.db")
}

// GetSettingsPath returns $PYWALFOX_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPywalfoxHome(), "settings.json")
}

// GetThemePath returns $PYWALFOX_HOME/theme.json
func GetThemePath() string {
	return filepath.Join(GetPywalfoxHome(), "theme.json")
}

// GetLockPath returns $PYWALFOX_HOME/pywalfox.lock
func GetLockPath() string {
	return filepath.Join(GetPywalfoxHome(), "pywalfox.lock")
}

// GetHostKeyPath returns the SSH host key used by the serve command
func GetHostKeyPath() string {
	return filepath.Join(GetPywalfoxHome(), "ssh", "host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
