package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeyBindingValue
	}{
		{"single string", `"F"`, KeyBindingValue{"F"}},
		{"array", `["up", "k"]`, KeyBindingValue{"up", "k"}},
		{"empty string", `""`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got KeyBindingValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyBindingValue_MarshalJSON(t *testing.T) {
	single, err := json.Marshal(KeyBindingValue{"F"})
	require.NoError(t, err)
	assert.Equal(t, `"F"`, string(single))

	multi, err := json.Marshal(KeyBindingValue{"up", "k"})
	require.NoError(t, err)
	assert.Equal(t, `["up","k"]`, string(multi))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"fetch", "help", "quit"}

	assert.NoError(t, KeyBindingsConfig(nil).Validate(valid))
	assert.NoError(t, KeyBindingsConfig{"fetch": {"F"}, "help": {"H", "?"}}.Validate(valid))

	err := KeyBindingsConfig{"launch": {"l"}}.Validate(valid)
	assert.ErrorContains(t, err, "unknown key binding 'launch'")

	err = KeyBindingsConfig{"fetch": {""}}.Validate(valid)
	assert.ErrorContains(t, err, "empty value")

	err = KeyBindingsConfig{"fetch": {"x"}, "quit": {"x"}}.Validate(valid)
	assert.ErrorContains(t, err, "key 'x' is assigned to both")
}

func TestStringArray_UnmarshalJSON(t *testing.T) {
	var arr StringArray
	require.NoError(t, json.Unmarshal([]byte(`["start", "--verbose"]`), &arr))
	assert.Equal(t, StringArray{"start", "--verbose"}, arr)

	var csv StringArray
	require.NoError(t, json.Unmarshal([]byte(`"start, --verbose ,"`), &csv))
	assert.Equal(t, StringArray{"start", "--verbose"}, csv)
}

func TestLoadSettings(t *testing.T) {
	t.Run("missing file yields empty settings", func(t *testing.T) {
		t.Setenv("PYWALFOX_HOME", t.TempDir())

		settings, err := LoadSettings()

		require.NoError(t, err)
		assert.Equal(t, &Settings{}, settings)
	})

	t.Run("reads and expands paths", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("PYWALFOX_HOME", home)
		userHome, err := os.UserHomeDir()
		require.NoError(t, err)

		content := `{
			"debug": true,
			"debug_output_lines": 200,
			"helper_path": "~/bin/pywalfox",
			"helper_args": "start",
			"request_timeout_seconds": 5,
			"watch_wal_cache": false
		}`
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

		settings, err := LoadSettings()

		require.NoError(t, err)
		require.NotNil(t, settings.Debug)
		assert.True(t, *settings.Debug)
		assert.Equal(t, 200, *settings.DebugOutputLines)
		assert.Equal(t, filepath.Join(userHome, "bin", "pywalfox"), settings.HelperPath)
		assert.Equal(t, StringArray{"start"}, settings.HelperArgs)
		assert.Equal(t, 5, *settings.RequestTimeoutSeconds)
		assert.False(t, *settings.WatchWalCache)
	})

	t.Run("invalid json", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("PYWALFOX_HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

		_, err := LoadSettings()

		assert.ErrorContains(t, err, "invalid settings.json")
	})
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("PYWALFOX_HOME", filepath.Join(t.TempDir(), "nested"))
	port := 2222

	require.NoError(t, SaveSettings(&Settings{SSHPort: &port, Keys: KeyBindingsConfig{"fetch": {"F"}}}))
	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, 2222, *settings.SSHPort)
	assert.Equal(t, KeyBindingValue{"F"}, settings.Keys["fetch"])
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{
		"debug", "debug_output_lines", "helper_args", "helper_path", "keys", "max_log_files",
		"request_timeout_seconds", "ssh_host", "ssh_port", "theme_output", "wal_cache_path", "watch_wal_cache",
	} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, DefaultSSHPort, example["ssh_port"])
}

func TestPaths_FollowHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PYWALFOX_HOME", home)

	assert.Equal(t, filepath.Join(home, "settings.db"), GetDBPath())
	assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(home, "theme.json"), GetThemePath())
	assert.Equal(t, filepath.Join(home, "pywalfox.lock"), GetLockPath())
}
