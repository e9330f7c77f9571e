package storage

import (
	"context"
	"path/filepath"
	"slices"
	"sync"

	"github.com/halvar/daybook/internal/domain/task"
	"github.com/halvar/daybook/internal/repository"
)

// TaskRepository implements task.Repository over the tasks document.
type TaskRepository struct {
	mu      sync.Mutex
	path    string
	records []task.Task
}

func newTaskRepository(dir string) (*TaskRepository, error) {
	path := filepath.Join(dir, tasksFile)
	records, err := readDocument[task.Task](path)
	if err != nil {
		return nil, err
	}
	return &TaskRepository{path: path, records: records}, nil
}

// Create appends a task and persists the collection.
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.find(t.ID) >= 0 {
		return repository.ErrInvalidInput
	}

	next := append(slices.Clone(r.records), *t)
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// Get retrieves a task by ID.
func (r *TaskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	t := r.records[i]
	return &t, nil
}

// List returns all tasks in insertion order.
func (r *TaskRepository) List(ctx context.Context) ([]task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.records), nil
}

// Update replaces a stored task and persists the collection.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(t.ID)
	if i < 0 {
		return repository.ErrNotFound
	}

	next := slices.Clone(r.records)
	next[i] = *t
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// Delete removes a task. Its ID is never handed out again.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
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

// find returns the index of id, or -1. Callers must hold mu.
func (r *TaskRepository) find(id string) int {
	return slices.IndexFunc(r.records, func(t task.Task) bool { return t.ID == id })
}
