package mcp

import (
	"errors"
	"fmt"

	"github.com/halvar/daybook/internal/domain/habit"
	"github.com/halvar/daybook/internal/domain/note"
	"github.com/halvar/daybook/internal/domain/reminder"
	"github.com/halvar/daybook/internal/domain/task"
	"github.com/halvar/daybook/internal/domain/timer"
	"github.com/halvar/daybook/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, habit.ErrHabitNotFound),
		errors.Is(err, note.ErrNoteNotFound),
		errors.Is(err, reminder.ErrReminderNotFound),
		errors.Is(err, repository.ErrNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "Check ID spelling"}
	case errors.Is(err, task.ErrInvalidInput),
		errors.Is(err, habit.ErrInvalidInput),
		errors.Is(err, note.ErrInvalidInput),
		errors.Is(err, reminder.ErrInvalidInput),
		errors.Is(err, timer.ErrInvalidDuration),
		errors.Is(err, repository.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Check required fields"}
	case errors.Is(err, timer.ErrInvalidTransition):
		return &APIError{Code: "INVALID_TRANSITION", Message: err.Error(), RecoveryHint: "Check timer state first via timer_status"}
	case errors.Is(err, repository.ErrCorrupt):
		// Never masked: a corrupt document means potential data loss.
		return &APIError{Code: "CORRUPT_STORE", Message: err.Error(), RecoveryHint: "Inspect the data directory; the document did not parse"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
