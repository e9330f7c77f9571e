package habit

import "errors"

var (
	// ErrHabitNotFound indicates the habit doesn't exist.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidInput indicates invalid input for habit operations.
	ErrInvalidInput = errors.New("invalid habit input")
)
