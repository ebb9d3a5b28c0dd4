package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrHeaderNotFound is returned when the buffer runs out before a title
	// and speaker line are found.
	ErrHeaderNotFound = errors.New("header not found")
	// ErrMalformedHeading is returned for a comparison heading without a divider.
	ErrMalformedHeading = errors.New("malformed comparison heading")
	// ErrMalformedItem is returned for a comparison item without a divider.
	ErrMalformedItem = errors.New("malformed comparison item")
)

// HeaderNotFoundError records how many lines were left when header
// extraction gave up.
type HeaderNotFoundError struct {
	Remaining int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("could not find header in %d lines", e.Remaining)
}

func (e *HeaderNotFoundError) Unwrap() error { return ErrHeaderNotFound }

// MalformedLineError points at the comparison line that failed to parse.
type MalformedLineError struct {
	// Err is ErrMalformedHeading or ErrMalformedItem.
	Err error
	// Index is the line's position in the buffer at the time of the failure.
	Index int
	Line  string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%v at line %d: %q has no %q divider", e.Err, e.Index, e.Line, Divider)
}

func (e *MalformedLineError) Unwrap() error { return e.Err }
