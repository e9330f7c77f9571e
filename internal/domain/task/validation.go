package task

import "strings"

// ValidateCreateInput validates fields required to create a task.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateUpdateInput validates an update request. A nil title leaves the
// field unchanged; an explicitly empty one is rejected.
func ValidateUpdateInput(req UpdateRequest) error {
	if req.ID == "" {
		return ErrInvalidInput
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}
