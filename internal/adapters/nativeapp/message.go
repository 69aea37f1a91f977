package nativeapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"pywalfox/internal/domain"
)

// Helper actions
const (
	ActionColors      = "action:colors"
	ActionCSSDisable  = "css:disable"
	ActionCSSEnable   = "css:enable"
	ActionCSSFontSize = "css:font:size"
	ActionInvalid     = "action:invalid"
	ActionOutput      = "debug:output"
	ActionThemeMode   = "theme:mode"
	ActionVersion     = "debug:version"
)

// Message is a message received from the helper. Failures carry Success=false
// and are routed by Action like successes.
type Message struct {
	Action  string          `json:"action"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Success bool            `json:"success"`
	Target  string          `json:"target,omitempty"`
}

// request is a message sent to the helper
type request struct {
	Action string `json:"action"`
	Size   int    `json:"size,omitempty"`
	Target string `json:"target,omitempty"`
}

// dataString returns Data as text. Numbers and bare strings are both accepted.
func (m Message) dataString() string {
	raw := bytes.TrimSpace(m.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// colors decodes a palette sent either as a bare list or as {"colors": [...]}.
func (m Message) colors() (domain.PaletteColors, error) {
	var list []string
	if err := json.Unmarshal(m.Data, &list); err != nil {
		var wrapped struct {
			Colors []string `json:"colors"`
		}
		if err := json.Unmarshal(m.Data, &wrapped); err != nil {
			return domain.PaletteColors{}, fmt.Errorf("%w: %v", domain.ErrInvalidPalette, err)
		}
		list = wrapped.Colors
	}
	return domain.NewPaletteColors(list)
}

// versionAtLeast compares dotted numeric versions. Unparseable versions fail.
func versionAtLeast(version, minimum string) bool {
	v, ok := parseVersion(version)
	if !ok {
		return false
	}
	m, ok := parseVersion(minimum)
	if !ok {
		return false
	}
	for i := 0; i < max(len(v), len(m)); i++ {
		var a, b int
		if i < len(v) {
			a = v[i]
		}
		if i < len(m) {
			b = m[i]
		}
		if a != b {
			return a > b
		}
	}
	return true
}

func parseVersion(s string) ([]int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return nil, false
	}
	parts := strings.Split(s, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}
