package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/halvar/daybook/internal/domain/habit"
	"github.com/halvar/daybook/internal/domain/note"
	"github.com/halvar/daybook/internal/domain/reminder"
	"github.com/halvar/daybook/internal/domain/task"
)

// TaskRepository is a mock for task.Repository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TaskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*task.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) List(ctx context.Context) ([]task.Task, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]task.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TaskRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// HabitRepository is a mock for habit.Repository.
type HabitRepository struct {
	mock.Mock
}

func (m *HabitRepository) Create(ctx context.Context, h *habit.Habit) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *HabitRepository) Get(ctx context.Context, id string) (*habit.Habit, error) {
	args := m.Called(ctx, id)
	if h, ok := args.Get(0).(*habit.Habit); ok {
		return h, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HabitRepository) List(ctx context.Context) ([]habit.Habit, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]habit.Habit); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HabitRepository) Update(ctx context.Context, h *habit.Habit) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *HabitRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// NoteRepository is a mock for note.Repository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) Get(ctx context.Context, id string) (*note.Note, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*note.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]note.Note); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ReminderRepository is a mock for reminder.Repository.
type ReminderRepository struct {
	mock.Mock
}

func (m *ReminderRepository) Create(ctx context.Context, r *reminder.Reminder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReminderRepository) Get(ctx context.Context, id string) (*reminder.Reminder, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*reminder.Reminder); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReminderRepository) List(ctx context.Context) ([]reminder.Reminder, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]reminder.Reminder); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReminderRepository) Update(ctx context.Context, r *reminder.Reminder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReminderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReminderRepository) ClaimDue(ctx context.Context, now time.Time) ([]reminder.Reminder, error) {
	args := m.Called(ctx, now)
	if list, ok := args.Get(0).([]reminder.Reminder); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
