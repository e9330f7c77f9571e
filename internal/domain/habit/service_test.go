package habit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/halvar/daybook/internal/domain/habit"
	"github.com/halvar/daybook/internal/repository"
	"github.com/halvar/daybook/internal/repository/mocks"
)

func TestHabitService_Create(t *testing.T) {
	ctx := context.Background()

	habitsRepo := &mocks.HabitRepository{}
	habitsRepo.On("Create", ctx, mock.Anything).Return(nil)

	svc := habit.NewService(habitsRepo, nil)
	h, err := svc.Create(ctx, "morning run")
	require.NoError(t, err)
	require.NotEmpty(t, h.ID)
	require.Equal(t, "morning run", h.Name)
	require.Empty(t, h.Completions)
}

func TestHabitService_Create_EmptyName(t *testing.T) {
	ctx := context.Background()

	svc := habit.NewService(&mocks.HabitRepository{}, nil)
	_, err := svc.Create(ctx, "   ")
	require.ErrorIs(t, err, habit.ErrInvalidInput)
}

func TestHabitService_MarkDone_InsertsSorted(t *testing.T) {
	ctx := context.Background()

	habitsRepo := &mocks.HabitRepository{}
	habitsRepo.On("Get", ctx, "h1").Return(&habit.Habit{
		ID:          "h1",
		Name:        "reading",
		Completions: []habit.Day{"2025-05-30", "2025-06-02"},
	}, nil)
	habitsRepo.On("Update", ctx, mock.Anything).Return(nil)

	svc := habit.NewService(habitsRepo, nil)
	h, err := svc.MarkDone(ctx, "h1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, []habit.Day{"2025-05-30", "2025-06-01", "2025-06-02"}, h.Completions)
}

func TestHabitService_MarkDone_Idempotent(t *testing.T) {
	ctx := context.Background()

	habitsRepo := &mocks.HabitRepository{}
	habitsRepo.On("Get", ctx, "h1").Return(&habit.Habit{
		ID:          "h1",
		Name:        "reading",
		Completions: []habit.Day{"2025-06-01"},
	}, nil)
	// No Update expectation: marking an already-completed day must not
	// hit the repository.

	svc := habit.NewService(habitsRepo, nil)
	h, err := svc.MarkDone(ctx, "h1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, []habit.Day{"2025-06-01"}, h.Completions)
	habitsRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHabitService_MarkDone_InvalidDay(t *testing.T) {
	ctx := context.Background()

	svc := habit.NewService(&mocks.HabitRepository{}, nil)
	_, err := svc.MarkDone(ctx, "h1", "June 1st")
	require.ErrorIs(t, err, habit.ErrInvalidInput)
}

func TestHabitService_Unmark_AbsentDayIsNoop(t *testing.T) {
	ctx := context.Background()

	habitsRepo := &mocks.HabitRepository{}
	habitsRepo.On("Get", ctx, "h1").Return(&habit.Habit{
		ID:          "h1",
		Name:        "reading",
		Completions: []habit.Day{"2025-06-01"},
	}, nil)

	svc := habit.NewService(habitsRepo, nil)
	h, err := svc.Unmark(ctx, "h1", "2025-06-02")
	require.NoError(t, err)
	require.Equal(t, []habit.Day{"2025-06-01"}, h.Completions)
	habitsRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHabitService_Streak_ConsecutiveFromToday(t *testing.T) {
	ctx := context.Background()

	habitsRepo := &mocks.HabitRepository{}
	habitsRepo.On("Get", ctx, "h1").Return(&habit.Habit{
		ID:   "h1",
		Name: "reading",
		// Gap at 2025-05-29 ends the streak at 3.
		Completions: []habit.Day{"2025-05-27", "2025-05-30", "2025-05-31", "2025-06-01"},
	}, nil)

	svc := habit.NewService(habitsRepo, nil)
	streak, err := svc.Streak(ctx, "h1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, 3, streak)
}

func TestHabitService_Streak_ZeroWhenTodayNotDone(t *testing.T) {
	ctx := context.Background()

	habitsRepo := &mocks.HabitRepository{}
	habitsRepo.On("Get", ctx, "h1").Return(&habit.Habit{
		ID:          "h1",
		Name:        "reading",
		Completions: []habit.Day{"2025-05-30", "2025-05-31"},
	}, nil)

	svc := habit.NewService(habitsRepo, nil)
	streak, err := svc.Streak(ctx, "h1", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, 0, streak)
}

func TestHabitService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	habitsRepo := &mocks.HabitRepository{}
	habitsRepo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := habit.NewService(habitsRepo, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, habit.ErrHabitNotFound)
}

func TestDay_Prev(t *testing.T) {
	require.Equal(t, habit.Day("2025-05-31"), habit.Day("2025-06-01").Prev())
	require.Equal(t, habit.Day("2025-02-28"), habit.Day("2025-03-01").Prev())
	require.Equal(t, habit.Day("2024-02-29"), habit.Day("2024-03-01").Prev())
	require.Equal(t, habit.Day("2024-12-31"), habit.Day("2025-01-01").Prev())
}
