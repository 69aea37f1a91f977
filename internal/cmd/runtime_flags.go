package cmd

import (
	"os"
	"time"

	"pywalfox/internal/adapters/walwatch"
	"pywalfox/internal/config"
	"pywalfox/internal/ui"
)

// RuntimeFlags are shared by every command that starts a live session
type RuntimeFlags struct {
	Dev             bool     `help:"Show development info in the header"`
	ErrorClearDelay int      `help:"Seconds before an error message is cleared" default:"5"`
	HelperArgs      []string `help:"Arguments passed to the native helper" default:"start"`
	HelperPath      string   `help:"Native helper executable" default:"pywalfox" env:"PYWALFOX_HELPER"`
	LogLines        int      `help:"Diagnostic lines kept in the debugging card" default:"500"`
	RequestTimeout  int      `help:"Seconds to wait for a request before giving up" default:"30"`
	ThemeOutput     string   `help:"Where the generated browser theme is written (default: $PYWALFOX_HOME/theme.json)"`
	WalCachePath    string   `help:"pywal colors.json to watch (default: $XDG_CACHE_HOME/wal/colors.json)"`
	WatchWal        bool     `help:"Refetch colors whenever pywal regenerates its palette"`
}

// apply fills flags still at their default from settings.json
func (f *RuntimeFlags) apply(settings *config.Settings) {
	if settings != nil {
		if f.HelperPath == defaultHelperPath && settings.HelperPath != "" {
			if _, hasEnv := os.LookupEnv("PYWALFOX_HELPER"); !hasEnv {
				f.HelperPath = settings.HelperPath
			}
		}
		if len(settings.HelperArgs) > 0 && len(f.HelperArgs) == 1 && f.HelperArgs[0] == "start" {
			f.HelperArgs = settings.HelperArgs
		}
		if f.LogLines == defaultLogLines && settings.DebugOutputLines != nil {
			f.LogLines = *settings.DebugOutputLines
		}
		if f.RequestTimeout == defaultRequestTimeout && settings.RequestTimeoutSeconds != nil {
			f.RequestTimeout = *settings.RequestTimeoutSeconds
		}
		if f.ThemeOutput == "" {
			f.ThemeOutput = settings.ThemeOutput
		}
		if f.WalCachePath == "" {
			f.WalCachePath = settings.WalCachePath
		}
		if !f.WatchWal && settings.WatchWalCache != nil {
			f.WatchWal = *settings.WatchWalCache
		}
	}

	if f.ThemeOutput == "" {
		f.ThemeOutput = config.GetThemePath()
	}
	if f.WalCachePath == "" {
		f.WalCachePath = walwatch.DefaultCachePath()
	}
}

func (f *RuntimeFlags) runtimeOptions() RuntimeOptions {
	return RuntimeOptions{
		HelperArgs:   f.HelperArgs,
		HelperPath:   config.ExpandPath(f.HelperPath),
		ThemeOutput:  config.ExpandPath(f.ThemeOutput),
		WalCachePath: f.WalCachePath,
		WatchWal:     f.WatchWal,
	}
}

// modelOptions builds the surface options shared by local and remote sessions
func (f *RuntimeFlags) modelOptions(keys config.KeyBindingsConfig) ui.Options {
	return ui.Options{
		DevMode:         f.Dev,
		ErrorClearDelay: time.Duration(f.ErrorClearDelay) * time.Second,
		Keys:            keys,
		LogLines:        f.LogLines,
		RequestTimeout:  time.Duration(f.RequestTimeout) * time.Second,
	}
}
