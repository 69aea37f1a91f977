package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"pywalfox/internal/config"
	"pywalfox/internal/logging"
)

// Flag defaults; settings.json only applies while a flag still holds its default
const (
	defaultHelperPath     = "pywalfox"
	defaultLogLines       = config.DefaultDebugOutputLines
	defaultRequestTimeout = config.DefaultRequestTimeoutSeconds
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the pywalfox settings surface (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the settings surface over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`
	Template TemplateCmd `cmd:"template" help:"Inspect or reset the stored templates"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PYWALFOX_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PYWALFOX_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// The helper inherits these so its output lands in the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PYWALFOX_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PYWALFOX_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("PYWALFOX_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// keyBindings returns the validated custom key bindings, or nil.
func (c *CLI) keyBindings(validNames []string) (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(validNames); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}
