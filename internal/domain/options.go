package domain

import (
	"maps"
	"slices"
)

// Option names known to the settings surface.
const (
	OptionDuckDuckGo  = "duckduckgo"
	OptionFontSize    = "fontSize"
	OptionUserChrome  = "userChrome"
	OptionUserContent = "userContent"
)

// AsyncOptions are toggled through the helper process; their confirmation arrives later.
var AsyncOptions = map[string]bool{
	OptionUserChrome:  true,
	OptionUserContent: true,
}

// Options lists the toggleable options in display order.
var Options = []string{OptionDuckDuckGo, OptionUserChrome, OptionUserContent}

// OptionData is a single option's persisted state.
type OptionData struct {
	Enabled bool   `json:"enabled"`
	Option  string `json:"option"`
}

// OptionStatus is the rendered state of one option control.
type OptionStatus struct {
	Enabled bool
	Loading bool
}

// OptionState tracks every option control. A Loading marker is set when an
// asynchronous toggle is requested and cleared only by Confirm or Fail.
type OptionState map[string]OptionStatus

// Get returns the status of option (zero value when unknown).
func (s OptionState) Get(option string) OptionStatus {
	return s[option]
}

// MarkLoading puts option into the transient loading sub-state.
func (s OptionState) MarkLoading(option string) {
	st := s[option]
	st.Loading = true
	s[option] = st
}

// Confirm applies a confirmation notification for option.
func (s OptionState) Confirm(option string, enabled bool) {
	s[option] = OptionStatus{Enabled: enabled}
}

// Fail clears the loading marker without changing the enabled state.
func (s OptionState) Fail(option string) {
	st := s[option]
	st.Loading = false
	s[option] = st
}

// Names returns the tracked option names, sorted.
func (s OptionState) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
