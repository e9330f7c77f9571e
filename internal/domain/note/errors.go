package note

import "errors"

var (
	// ErrNoteNotFound indicates the note doesn't exist.
	ErrNoteNotFound = errors.New("note not found")
	// ErrInvalidInput indicates invalid input for note operations.
	ErrInvalidInput = errors.New("invalid note input")
)
