package biduration

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection is returned for input without any words.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrBothDirections is returned when "in" and "ago" are both present.
	ErrBothDirections = errors.New("both forward and backward directions specified")
	// ErrInvalidDuration is returned when the duration body does not parse.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrOutOfRange is returned when a magnitude does not fit in a signed duration.
	ErrOutOfRange = errors.New("duration out of range")
)

// ParseError describes why a duration could not be parsed or constructed.
// Err is always one of the package's sentinel errors.
type ParseError struct {
	Err    error
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%s: %q: %s", e.Err, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalidDuration(input, format string, args ...any) *ParseError {
	return &ParseError{
		Err:    ErrInvalidDuration,
		Input:  input,
		Reason: fmt.Sprintf(format, args...),
	}
}
