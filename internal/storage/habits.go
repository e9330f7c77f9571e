package storage

import (
	"context"
	"path/filepath"
	"slices"
	"sync"

	"github.com/halvar/daybook/internal/domain/habit"
	"github.com/halvar/daybook/internal/repository"
)

// HabitRepository implements habit.Repository over the habits document.
type HabitRepository struct {
	mu      sync.Mutex
	path    string
	records []habit.Habit
}

func newHabitRepository(dir string) (*HabitRepository, error) {
	path := filepath.Join(dir, habitsFile)
	records, err := readDocument[habit.Habit](path)
	if err != nil {
		return nil, err
	}
	return &HabitRepository{path: path, records: records}, nil
}

// Create appends a habit and persists the collection.
func (r *HabitRepository) Create(ctx context.Context, h *habit.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.find(h.ID) >= 0 {
		return repository.ErrInvalidInput
	}

	next := append(slices.Clone(r.records), cloneHabit(h))
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// Get retrieves a habit by ID.
func (r *HabitRepository) Get(ctx context.Context, id string) (*habit.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	h := cloneHabit(&r.records[i])
	return &h, nil
}

// List returns all habits in insertion order.
func (r *HabitRepository) List(ctx context.Context) ([]habit.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]habit.Habit, len(r.records))
	for i := range r.records {
		out[i] = cloneHabit(&r.records[i])
	}
	return out, nil
}

// Update replaces a stored habit and persists the collection.
func (r *HabitRepository) Update(ctx context.Context, h *habit.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(h.ID)
	if i < 0 {
		return repository.ErrNotFound
	}

	next := slices.Clone(r.records)
	next[i] = cloneHabit(h)
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// Delete removes a habit and its completion history.
func (r *HabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return repository.ErrNotFound
	}

	next := slices.Delete(slices.Clone(r.records), i, i+1)
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

func (r *HabitRepository) find(id string) int {
	return slices.IndexFunc(r.records, func(h habit.Habit) bool { return h.ID == id })
}

// cloneHabit deep-copies the completions slice so callers can't alias
// stored state.
func cloneHabit(h *habit.Habit) habit.Habit {
	out := *h
	out.Completions = slices.Clone(h.Completions)
	return out
}
