package reminder_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/halvar/daybook/internal/domain/reminder"
	"github.com/halvar/daybook/internal/repository"
	"github.com/halvar/daybook/internal/repository/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReminderService_Schedule(t *testing.T) {
	ctx := context.Background()
	fireAt := time.Date(2025, 6, 1, 15, 30, 0, 0, time.FixedZone("CEST", 2*3600))

	remindersRepo := &mocks.ReminderRepository{}
	remindersRepo.On("Create", ctx, mock.Anything).Return(nil)

	svc := reminder.NewService(remindersRepo, discardLogger())
	r, err := svc.Schedule(ctx, "stand up", fireAt)
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
	require.False(t, r.Fired)
	// Fire times are normalized to UTC.
	require.Equal(t, time.UTC, r.FireAt.Location())
	require.True(t, r.FireAt.Equal(fireAt))
}

func TestReminderService_Schedule_Invalid(t *testing.T) {
	ctx := context.Background()

	svc := reminder.NewService(&mocks.ReminderRepository{}, discardLogger())

	_, err := svc.Schedule(ctx, "", time.Now())
	require.ErrorIs(t, err, reminder.ErrInvalidInput)

	_, err = svc.Schedule(ctx, "msg", time.Time{})
	require.ErrorIs(t, err, reminder.ErrInvalidInput)
}

func TestReminderService_Reschedule_ClearsFired(t *testing.T) {
	ctx := context.Background()
	newFireAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	remindersRepo := &mocks.ReminderRepository{}
	remindersRepo.On("Get", ctx, "r1").Return(&reminder.Reminder{
		ID:      "r1",
		Message: "stand up",
		FireAt:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Fired:   true,
	}, nil)
	remindersRepo.On("Update", ctx, mock.MatchedBy(func(r *reminder.Reminder) bool {
		return !r.Fired && r.FireAt.Equal(newFireAt)
	})).Return(nil)

	svc := reminder.NewService(remindersRepo, discardLogger())
	r, err := svc.Reschedule(ctx, "r1", newFireAt)
	require.NoError(t, err)
	require.False(t, r.Fired)
	require.True(t, r.FireAt.Equal(newFireAt))
}

func TestReminderService_CheckDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	remindersRepo := &mocks.ReminderRepository{}
	remindersRepo.On("ClaimDue", ctx, now).Return([]reminder.Reminder{
		{ID: "r1", Message: "stand up", Fired: true},
	}, nil)

	svc := reminder.NewService(remindersRepo, discardLogger())
	due, err := svc.CheckDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, "r1", due[0].ID)
}

func TestReminderService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	remindersRepo := &mocks.ReminderRepository{}
	remindersRepo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := reminder.NewService(remindersRepo, discardLogger())
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, reminder.ErrReminderNotFound)
}

func TestReminder_Due(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	r := reminder.Reminder{FireAt: now.Add(-time.Minute)}
	require.True(t, r.Due(now))

	// Exactly at the fire instant counts as due.
	r = reminder.Reminder{FireAt: now}
	require.True(t, r.Due(now))

	r = reminder.Reminder{FireAt: now.Add(time.Minute)}
	require.False(t, r.Due(now))

	r = reminder.Reminder{FireAt: now.Add(-time.Minute), Fired: true}
	require.False(t, r.Due(now))
}
