package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"pywalfox/internal/domain"
)

// FontSizeFormResult contains the outcome of the font size dialog
type FontSizeFormResult struct {
	Cancelled bool
	Size      int
}

// FontSizeForm asks for a new browser font size
type FontSizeForm struct {
	Completed bool
	form      *huh.Form
	input     string
	result    FontSizeFormResult
}

// NewFontSizeForm creates the dialog prefilled with current.
func NewFontSizeForm(current int) *FontSizeForm {
	f := &FontSizeForm{}
	if current != domain.DefaultFontSize {
		f.input = strconv.Itoa(current)
	}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Font size").
				Description(fmt.Sprintf("Between %d and %d pixels", domain.MinFontSize, domain.MaxFontSize)).
				Value(&f.input).
				Validate(validateFontSize),
		),
	)
	return f
}

func validateFontSize(s string) error {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("font size must be a number")
	}
	if size < domain.MinFontSize || size > domain.MaxFontSize {
		return fmt.Errorf("font size must be between %d and %d", domain.MinFontSize, domain.MaxFontSize)
	}
	return nil
}

func (f *FontSizeForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *FontSizeForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
		// Validate already accepted the input
		f.result.Size, _ = strconv.Atoi(strings.TrimSpace(f.input))
		return f, nil
	case huh.StateAborted:
		f.Completed = true
		f.result.Cancelled = true
		return f, nil
	}

	return f, cmd
}

func (f *FontSizeForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *FontSizeForm) Result() FontSizeFormResult {
	return f.result
}
