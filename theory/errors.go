package theory

import "errors"

var (
	// ErrNotFound is returned when a scale, key or note name is not registered.
	ErrNotFound = errors.New("not found")

	// ErrUndefinedTransition means the transition table has no successor for a
	// spelling/step pair. It points at a gap in the static table and callers
	// should treat it as fatal.
	ErrUndefinedTransition = errors.New("undefined transition")

	// ErrMalformedNote is returned when a note spelling cannot be parsed.
	ErrMalformedNote = errors.New("malformed note")
)
