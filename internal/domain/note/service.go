package note

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

// Service handles note business logic.
type Service struct {
	notes  Repository
	logger *slog.Logger
}

// NewService creates a new note service.
func NewService(notes Repository, logger *slog.Logger) *Service {
	return &Service{
		notes:  notes,
		logger: logger,
	}
}

// Add creates a new note.
func (s *Service) Add(ctx context.Context, text string) (*Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()
	n := &Note{
		ID:         uuid.NewString(),
		Text:       text,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	return n, nil
}

// Get returns a note by ID.
func (s *Service) Get(ctx context.Context, id string) (*Note, error) {
	n, err := s.notes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("getting note: %w", err)
	}
	return n, nil
}

// List returns all notes in insertion order.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	return s.notes.List(ctx)
}

// Replace swaps a note's text wholesale.
func (s *Service) Replace(ctx context.Context, id, text string) (*Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Text = text
	updated.ModifiedAt = time.Now().UTC()

	if err := s.notes.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("replacing note text: %w", err)
	}

	return &updated, nil
}

// Search returns notes whose text contains query, case-insensitively,
// in insertion order.
func (s *Service) Search(ctx context.Context, query string) ([]Note, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}

	all, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	needle := strings.ToLower(query)
	var hits []Note
	for _, n := range all {
		if strings.Contains(strings.ToLower(n.Text), needle) {
			hits = append(hits, n)
		}
	}
	return hits, nil
}

// Delete removes a note.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}
