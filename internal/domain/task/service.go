package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/halvar/daybook/internal/repository"
)

// Service handles task business logic.
type Service struct {
	tasks  Repository
	logger *slog.Logger
}

// NewService creates a new task service.
func NewService(tasks Repository, logger *slog.Logger) *Service {
	return &Service{
		tasks:  tasks,
		logger: logger,
	}
}

// CreateRequest describes a task creation request.
type CreateRequest struct {
	Title string
	DueAt *time.Time
}

// UpdateRequest describes a task update request. Nil fields are unchanged.
type UpdateRequest struct {
	ID    string
	Title *string
	DueAt *time.Time
}

// Create creates a new task with validation.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Task, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	t := &Task{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Done:      false,
		CreatedAt: time.Now().UTC(),
		DueAt:     req.DueAt,
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return t, nil
}

// Get returns a task by ID.
func (s *Service) Get(ctx context.Context, id string) (*Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}

// List returns all tasks in insertion order.
func (s *Service) List(ctx context.Context) ([]Task, error) {
	return s.tasks.List(ctx)
}

// Update modifies a task's title and/or due time.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Task, error) {
	if err := ValidateUpdateInput(req); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.DueAt != nil {
		updated.DueAt = req.DueAt
	}

	if err := s.tasks.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return &updated, nil
}

// Toggle flips the done flag of a task.
func (s *Service) Toggle(ctx context.Context, id string) (*Task, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Done = !current.Done

	if err := s.tasks.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("toggling task: %w", err)
	}

	return &updated, nil
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	s.logger.Debug("task deleted", "id", id)
	return nil
}
