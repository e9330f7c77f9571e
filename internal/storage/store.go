// Package storage persists assistant records as one JSON document per
// record kind under a single data directory. Each collection is
// guarded by its own mutex; mutations commit to disk before they
// commit to memory, so a failed write leaves prior state visible.
package storage

import (
	"fmt"
	"os"
)

// Collection file names, one per record kind.
const (
	tasksFile     = "tasks.json"
	habitsFile    = "habits.json"
	notesFile     = "notes.json"
	remindersFile = "reminders.json"
)

// Store bundles the per-kind repositories backed by one data directory.
type Store struct {
	Tasks     *TaskRepository
	Habits    *HabitRepository
	Notes     *NoteRepository
	Reminders *ReminderRepository
}

// Open creates the data directory if needed and loads all four
// collections. Any malformed document fails the whole open with an
// error wrapping repository.ErrCorrupt.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	tasks, err := newTaskRepository(dir)
	if err != nil {
		return nil, err
	}
	habits, err := newHabitRepository(dir)
	if err != nil {
		return nil, err
	}
	notes, err := newNoteRepository(dir)
	if err != nil {
		return nil, err
	}
	reminders, err := newReminderRepository(dir)
	if err != nil {
		return nil, err
	}

	return &Store{
		Tasks:     tasks,
		Habits:    habits,
		Notes:     notes,
		Reminders: reminders,
	}, nil
}
