package reminder

import "errors"

var (
	// ErrReminderNotFound indicates the reminder doesn't exist.
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrInvalidInput indicates invalid input for reminder operations.
	ErrInvalidInput = errors.New("invalid reminder input")
)
