package domain

import (
	"errors"
	"fmt"
)

var (
	ErrHelperDisconnected = errors.New("helper process is not connected")
	ErrInvalidColor       = errors.New("invalid color value")
	ErrInvalidIndex       = errors.New("palette index out of range")
	ErrInvalidPalette     = errors.New("invalid palette")
	ErrInvalidThemeMode   = errors.New("invalid theme mode")
	ErrTimeout            = errors.New("request timed out")
	ErrUnknownAction      = errors.New("unknown action")
	ErrUnknownRole        = errors.New("unknown palette role")
	ErrUnresolved         = errors.New("role could not be resolved")
)

// IndexError reports a palette index outside [0, PywalColorCount) for a role.
type IndexError struct {
	Index int
	Role  string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d for role %q (must be 0-%d)", ErrInvalidIndex, e.Index, e.Role, PywalColorCount-1)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }
