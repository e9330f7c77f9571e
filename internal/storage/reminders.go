package storage

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/halvar/daybook/internal/domain/reminder"
	"github.com/halvar/daybook/internal/repository"
)

// ReminderRepository implements reminder.Repository over the
// reminders document.
type ReminderRepository struct {
	mu      sync.Mutex
	path    string
	records []reminder.Reminder
}

func newReminderRepository(dir string) (*ReminderRepository, error) {
	path := filepath.Join(dir, remindersFile)
	records, err := readDocument[reminder.Reminder](path)
	if err != nil {
		return nil, err
	}
	return &ReminderRepository{path: path, records: records}, nil
}

// Create appends a reminder and persists the collection.
func (r *ReminderRepository) Create(ctx context.Context, rem *reminder.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.find(rem.ID) >= 0 {
		return repository.ErrInvalidInput
	}

	next := append(slices.Clone(r.records), *rem)
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// Get retrieves a reminder by ID.
func (r *ReminderRepository) Get(ctx context.Context, id string) (*reminder.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	rem := r.records[i]
	return &rem, nil
}

// List returns all reminders in insertion order.
func (r *ReminderRepository) List(ctx context.Context) ([]reminder.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.records), nil
}

// Update replaces a stored reminder and persists the collection.
func (r *ReminderRepository) Update(ctx context.Context, rem *reminder.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(rem.ID)
	if i < 0 {
		return repository.ErrNotFound
	}

	next := slices.Clone(r.records)
	next[i] = *rem
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// Delete removes a reminder.
func (r *ReminderRepository) Delete(ctx context.Context, id string) error {
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

// ClaimDue selects every unfired reminder due at now, marks it fired
// and persists the flip before returning. Selection and marking
// happen under the same lock and the same document rewrite, so polling
// twice (or concurrently) can never deliver a reminder twice.
func (r *ReminderRepository) ClaimDue(ctx context.Context, now time.Time) ([]reminder.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []reminder.Reminder
	next := slices.Clone(r.records)
	for i := range next {
		if next[i].Due(now) {
			next[i].Fired = true
			due = append(due, next[i])
		}
	}
	if len(due) == 0 {
		return nil, nil
	}

	if err := writeDocument(r.path, next); err != nil {
		return nil, err
	}
	r.records = next
	return due, nil
}

func (r *ReminderRepository) find(id string) int {
	return slices.IndexFunc(r.records, func(rem reminder.Reminder) bool { return rem.ID == id })
}
