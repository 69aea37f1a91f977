package config

import (
	"reflect"
	"strings"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"fetch": "F",
			"help":  []string{"H", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "watch_wal_cache"
		case reflect.Int:
			switch fieldName {
			case "debug_output_lines":
				return DefaultDebugOutputLines
			case "max_log_files":
				return 1000
			case "request_timeout_seconds":
				return DefaultRequestTimeoutSeconds
			case "ssh_port":
				return DefaultSSHPort
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "helper_path":
			return "/usr/local/bin/pywalfox"
		case "ssh_host":
			return DefaultSSHHost
		case "theme_output":
			return "~/.pywalfox/theme.json"
		case "wal_cache_path":
			return "~/.cache/wal/colors.json"
		default:
			return "example"
		}
	case reflect.Slice:
		if fieldName == "helper_args" {
			return []string{"start"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
