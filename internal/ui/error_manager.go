package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg clears the error of the given generation, if it is still shown.
type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error of the last failed user action. Each SetError
// starts a new generation so a pending clear never removes a newer error.
type ErrorManager struct {
	clearDelay time.Duration
	current    error
	generation int
}

func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetError shows err and returns the command that clears it after the delay.
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.current = err
	em.generation++
	generation := em.generation
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}

// HandleClear drops the error when msg belongs to its generation.
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.current = nil
	}
}

func (em *ErrorManager) GetError() error {
	return em.current
}

func (em *ErrorManager) HasError() bool {
	return em.current != nil
}
