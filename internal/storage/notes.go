package storage

import (
	"context"
	"path/filepath"
	"slices"
	"sync"

	"github.com/halvar/daybook/internal/domain/note"
	"github.com/halvar/daybook/internal/repository"
)

// NoteRepository implements note.Repository over the notes document.
type NoteRepository struct {
	mu      sync.Mutex
	path    string
	records []note.Note
}

func newNoteRepository(dir string) (*NoteRepository, error) {
	path := filepath.Join(dir, notesFile)
	records, err := readDocument[note.Note](path)
	if err != nil {
		return nil, err
	}
	return &NoteRepository{path: path, records: records}, nil
}

// Create appends a note and persists the collection.
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.find(n.ID) >= 0 {
		return repository.ErrInvalidInput
	}

	next := append(slices.Clone(r.records), *n)
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// Get retrieves a note by ID.
func (r *NoteRepository) Get(ctx context.Context, id string) (*note.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	n := r.records[i]
	return &n, nil
}

// List returns all notes in insertion order.
func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.records), nil
}

// Update replaces a stored note and persists the collection.
func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(n.ID)
	if i < 0 {
		return repository.ErrNotFound
	}

	next := slices.Clone(r.records)
	next[i] = *n
	if err := writeDocument(r.path, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// Delete removes a note.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
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

func (r *NoteRepository) find(id string) int {
	return slices.IndexFunc(r.records, func(n note.Note) bool { return n.ID == id })
}
