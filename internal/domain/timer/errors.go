package timer

import "errors"

var (
	// ErrInvalidTransition indicates an operation invoked from a state
	// that does not permit it.
	ErrInvalidTransition = errors.New("invalid timer transition")
	// ErrInvalidDuration indicates a non-positive countdown duration.
	ErrInvalidDuration = errors.New("invalid timer duration")
)
