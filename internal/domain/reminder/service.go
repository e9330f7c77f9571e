package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/halvar/daybook/internal/repository"
)

// Service handles reminder business logic.
type Service struct {
	reminders Repository
	logger    *slog.Logger
}

// NewService creates a new reminder service.
func NewService(reminders Repository, logger *slog.Logger) *Service {
	return &Service{
		reminders: reminders,
		logger:    logger,
	}
}

// Schedule creates a new reminder. A fire time in the past is
// accepted; it becomes due on the next poll.
func (s *Service) Schedule(ctx context.Context, message string, fireAt time.Time) (*Reminder, error) {
	if strings.TrimSpace(message) == "" || fireAt.IsZero() {
		return nil, ErrInvalidInput
	}

	r := &Reminder{
		ID:        uuid.NewString(),
		Message:   message,
		FireAt:    fireAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.reminders.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("scheduling reminder: %w", err)
	}

	return r, nil
}

// Get returns a reminder by ID.
func (s *Service) Get(ctx context.Context, id string) (*Reminder, error) {
	r, err := s.reminders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("getting reminder: %w", err)
	}
	return r, nil
}

// List returns all reminders in insertion order, fired or not.
func (s *Service) List(ctx context.Context) ([]Reminder, error) {
	return s.reminders.List(ctx)
}

// Reschedule re-arms a reminder at a new fire time, clearing the
// fired flag.
func (s *Service) Reschedule(ctx context.Context, id string, fireAt time.Time) (*Reminder, error) {
	if fireAt.IsZero() {
		return nil, ErrInvalidInput
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.FireAt = fireAt.UTC()
	updated.Fired = false

	if err := s.reminders.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("rescheduling reminder: %w", err)
	}

	return &updated, nil
}

// CheckDue returns every reminder due at now, each already marked
// fired by the repository before this returns. A reminder is reported
// at most once across any sequence of calls.
func (s *Service) CheckDue(ctx context.Context, now time.Time) ([]Reminder, error) {
	due, err := s.reminders.ClaimDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("claiming due reminders: %w", err)
	}
	if len(due) > 0 {
		s.logger.Info("reminders fired", "count", len(due))
	}
	return due, nil
}

// Delete removes a reminder.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.reminders.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReminderNotFound
		}
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return nil
}
