package monitor

import (
	"errors"
	"fmt"
)

// ErrorSource identifies which reader produced an error.
type ErrorSource string

const (
	ErrorSourceBattery ErrorSource = "battery"
	ErrorSourceSysInfo ErrorSource = "sysinfo"
	ErrorSourceOS      ErrorSource = "os"
	ErrorSourceHost    ErrorSource = "host"
	ErrorSourceDisplay ErrorSource = "display"
)

// ErrNotAvailable is wrapped by readers when the information source does
// not exist on this system (no batteries, no DMI table, no X server).
var ErrNotAvailable = errors.New("not available")

// ComponentError wraps an error with source information.
// It preserves the original error for inspection via errors.Is/errors.As.
type ComponentError struct {
	Source ErrorSource
	Err    error
}

// Error implements the error interface.
func (e *ComponentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *ComponentError) Unwrap() error {
	return e.Err
}

// NewComponentError creates a new ComponentError.
func NewComponentError(source ErrorSource, err error) *ComponentError {
	return &ComponentError{
		Source: source,
		Err:    err,
	}
}

// IsComponentError returns true if err wraps or is a ComponentError with the given source.
func IsComponentError(err error, source ErrorSource) bool {
	var ce *ComponentError
	for errors.As(err, &ce) {
		if ce.Source == source {
			return true
		}
		err = ce.Err
	}
	return false
}
