package habit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/halvar/daybook/internal/repository"
)

// Service handles habit business logic.
type Service struct {
	habits Repository
	logger *slog.Logger
}

// NewService creates a new habit service.
func NewService(habits Repository, logger *slog.Logger) *Service {
	return &Service{
		habits: habits,
		logger: logger,
	}
}

// Create creates a new habit with an empty completion set.
func (s *Service) Create(ctx context.Context, name string) (*Habit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}

	h := &Habit{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.habits.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("creating habit: %w", err)
	}

	return h, nil
}

// Get returns a habit by ID.
func (s *Service) Get(ctx context.Context, id string) (*Habit, error) {
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("getting habit: %w", err)
	}
	return h, nil
}

// List returns all habits in insertion order.
func (s *Service) List(ctx context.Context) ([]Habit, error) {
	return s.habits.List(ctx)
}

// MarkDone records a completion for the given day. Marking an
// already-completed day is a no-op, not an error. Future days are
// accepted; the caller decides what "today" means.
func (s *Service) MarkDone(ctx context.Context, id string, day Day) (*Habit, error) {
	if !day.Valid() {
		return nil, ErrInvalidInput
	}

	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.Completed(day) {
		return h, nil
	}

	updated := *h
	updated.Completions = slices.Clone(h.Completions)
	// Lexicographic order of YYYY-MM-DD is chronological order.
	pos, _ := slices.BinarySearch(updated.Completions, day)
	updated.Completions = slices.Insert(updated.Completions, pos, day)

	if err := s.habits.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("marking habit done: %w", err)
	}

	return &updated, nil
}

// Unmark removes a completion for the given day. Removing an absent
// day is a no-op.
func (s *Service) Unmark(ctx context.Context, id string, day Day) (*Habit, error) {
	if !day.Valid() {
		return nil, ErrInvalidInput
	}

	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !h.Completed(day) {
		return h, nil
	}

	updated := *h
	updated.Completions = slices.DeleteFunc(slices.Clone(h.Completions), func(d Day) bool {
		return d == day
	})

	if err := s.habits.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("unmarking habit: %w", err)
	}

	return &updated, nil
}

// Streak counts consecutive completed days walking backward from
// today. A habit not completed today has a streak of 0.
func (s *Service) Streak(ctx context.Context, id string, today Day) (int, error) {
	if !today.Valid() {
		return 0, ErrInvalidInput
	}

	h, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	present := make(map[Day]struct{}, len(h.Completions))
	for _, d := range h.Completions {
		present[d] = struct{}{}
	}

	streak := 0
	for day := today; ; day = day.Prev() {
		if _, ok := present[day]; !ok {
			break
		}
		streak++
	}
	return streak, nil
}

// Delete removes a habit and its completion history.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.habits.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrHabitNotFound
		}
		return fmt.Errorf("deleting habit: %w", err)
	}
	return nil
}
