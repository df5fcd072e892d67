package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDay is returned by Lookup for a day that was never registered.
	ErrUnknownDay = errors.New("puzzle: unknown day")

	// ErrNoInput indicates that a day has neither a supplied nor an embedded input.
	ErrNoInput = errors.New("puzzle: no input available")

	// ErrEmptyInput indicates that the input holds no data lines.
	ErrEmptyInput = errors.New("puzzle: input is empty")

	// ErrMalformedInput indicates input that does not follow the day's format.
	ErrMalformedInput = errors.New("puzzle: malformed input")
)

// ParseError reports a malformed input line. Line is 1-based; 0 means the
// problem is not tied to one line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse: %v", e.Err)
	}

	return fmt.Sprintf("parse line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause; ErrMalformedInput is always in the chain.
func (e *ParseError) Unwrap() []error {
	if errors.Is(e.Err, ErrMalformedInput) {
		return []error{e.Err}
	}

	return []error{ErrMalformedInput, e.Err}
}

// Malformed builds a *ParseError for line (1-based) with a formatted reason.
func Malformed(line int, text string, format string, args ...any) error {
	return &ParseError{Line: line, Text: text, Err: fmt.Errorf(format, args...)}
}
