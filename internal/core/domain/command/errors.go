package command

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat matches every error raised for input whose shape is wrong.
var ErrInvalidFormat = errors.New("invalid command format")

// ErrInternalInconsistency indicates a registered word points at an action with no handler.
var ErrInternalInconsistency = errors.New("unknown command")

// FormatError reports malformed input together with the usage text of the
// command the user was attempting.
type FormatError struct {
	Usage  string
	Reason string
}

// InvalidFormat builds a FormatError for the given usage hint.
func InvalidFormat(usage string) *FormatError {
	return &FormatError{Usage: usage}
}

// InvalidFormatf builds a FormatError with a formatted reason.
func InvalidFormatf(usage, format string, args ...any) *FormatError {
	return &FormatError{Usage: usage, Reason: fmt.Sprintf(format, args...)}
}

func (e *FormatError) Error() string {
	msg := "Invalid command format!"
	if e.Reason != "" {
		msg += " " + e.Reason
	}
	if e.Usage != "" {
		msg += "\n" + e.Usage
	}
	return msg
}

// Is lets errors.Is(err, ErrInvalidFormat) match any FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
