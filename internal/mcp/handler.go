package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/halvar/daybook/internal/domain/habit"
	"github.com/halvar/daybook/internal/domain/note"
	"github.com/halvar/daybook/internal/domain/reminder"
	"github.com/halvar/daybook/internal/domain/task"
	"github.com/halvar/daybook/internal/domain/timer"
)

// TaskService defines task operations needed by the facade.
type TaskService interface {
	Create(ctx context.Context, req task.CreateRequest) (*task.Task, error)
	Get(ctx context.Context, id string) (*task.Task, error)
	List(ctx context.Context) ([]task.Task, error)
	Update(ctx context.Context, req task.UpdateRequest) (*task.Task, error)
	Toggle(ctx context.Context, id string) (*task.Task, error)
	Delete(ctx context.Context, id string) error
}

// HabitService defines habit operations needed by the facade.
type HabitService interface {
	Create(ctx context.Context, name string) (*habit.Habit, error)
	List(ctx context.Context) ([]habit.Habit, error)
	MarkDone(ctx context.Context, id string, day habit.Day) (*habit.Habit, error)
	Unmark(ctx context.Context, id string, day habit.Day) (*habit.Habit, error)
	Streak(ctx context.Context, id string, today habit.Day) (int, error)
	Delete(ctx context.Context, id string) error
}

// NoteService defines note operations needed by the facade.
type NoteService interface {
	Add(ctx context.Context, text string) (*note.Note, error)
	Get(ctx context.Context, id string) (*note.Note, error)
	List(ctx context.Context) ([]note.Note, error)
	Replace(ctx context.Context, id, text string) (*note.Note, error)
	Search(ctx context.Context, query string) ([]note.Note, error)
	Delete(ctx context.Context, id string) error
}

// ReminderService defines reminder operations needed by the facade.
type ReminderService interface {
	Schedule(ctx context.Context, message string, fireAt time.Time) (*reminder.Reminder, error)
	List(ctx context.Context) ([]reminder.Reminder, error)
	Reschedule(ctx context.Context, id string, fireAt time.Time) (*reminder.Reminder, error)
	CheckDue(ctx context.Context, now time.Time) ([]reminder.Reminder, error)
	Delete(ctx context.Context, id string) error
}

// Handler is the assistant facade: one operation per user-facing
// action, dispatched by tool name. It owns the singleton timer engine
// and the wall clock handed to time-driven operations.
type Handler struct {
	tasks     TaskService
	habits    HabitService
	notes     NoteService
	reminders ReminderService
	engine    *timer.Engine
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandler creates a new facade handler.
func NewHandler(tasks TaskService, habits HabitService, notes NoteService, reminders ReminderService, engine *timer.Engine, logger *slog.Logger) *Handler {
	return &Handler{
		tasks:     tasks,
		habits:    habits,
		notes:     notes,
		reminders: reminders,
		engine:    engine,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Handle dispatches a tool invocation to the domain services.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	// Tasks
	case "create_task":
		var req CreateTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		t, err := h.tasks.Create(ctx, task.CreateRequest{Title: req.Title, DueAt: req.DueAt})
		if err != nil {
			return nil, mapError(err)
		}
		return t, nil
	case "get_task":
		var req GetTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		t, err := h.tasks.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return t, nil
	case "list_tasks":
		list, err := h.tasks.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return nonNil(list), nil
	case "update_task":
		var req UpdateTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		t, err := h.tasks.Update(ctx, task.UpdateRequest{ID: req.ID, Title: req.Title, DueAt: req.DueAt})
		if err != nil {
			return nil, mapError(err)
		}
		return t, nil
	case "toggle_task":
		var req ToggleTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		t, err := h.tasks.Toggle(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return t, nil
	case "delete_task":
		var req DeleteTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.tasks.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil

	// Habits
	case "create_habit":
		var req CreateHabitParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		hb, err := h.habits.Create(ctx, req.Name)
		if err != nil {
			return nil, mapError(err)
		}
		return hb, nil
	case "list_habits":
		list, err := h.habits.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return nonNil(list), nil
	case "mark_habit":
		var req MarkHabitParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		hb, err := h.habits.MarkDone(ctx, req.ID, h.dayOrToday(req.Day))
		if err != nil {
			return nil, mapError(err)
		}
		return hb, nil
	case "unmark_habit":
		var req MarkHabitParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		hb, err := h.habits.Unmark(ctx, req.ID, h.dayOrToday(req.Day))
		if err != nil {
			return nil, mapError(err)
		}
		return hb, nil
	case "habit_streak":
		var req HabitStreakParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		day := h.dayOrToday(req.Day)
		streak, err := h.habits.Streak(ctx, req.ID, day)
		if err != nil {
			return nil, mapError(err)
		}
		return HabitStreakResponse{HabitID: req.ID, Day: string(day), Streak: streak}, nil
	case "delete_habit":
		var req DeleteHabitParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.habits.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil

	// Notes
	case "add_note":
		var req AddNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		n, err := h.notes.Add(ctx, req.Text)
		if err != nil {
			return nil, mapError(err)
		}
		return n, nil
	case "get_note":
		var req GetNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		n, err := h.notes.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return n, nil
	case "list_notes":
		list, err := h.notes.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return nonNil(list), nil
	case "replace_note":
		var req ReplaceNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		n, err := h.notes.Replace(ctx, req.ID, req.Text)
		if err != nil {
			return nil, mapError(err)
		}
		return n, nil
	case "search_notes":
		var req SearchNotesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		list, err := h.notes.Search(ctx, req.Query)
		if err != nil {
			return nil, mapError(err)
		}
		return nonNil(list), nil
	case "delete_note":
		var req DeleteNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.notes.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil

	// Reminders
	case "schedule_reminder":
		var req ScheduleReminderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		r, err := h.reminders.Schedule(ctx, req.Message, req.FireAt)
		if err != nil {
			return nil, mapError(err)
		}
		return r, nil
	case "list_reminders":
		list, err := h.reminders.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return nonNil(list), nil
	case "reschedule_reminder":
		var req RescheduleReminderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		r, err := h.reminders.Reschedule(ctx, req.ID, req.FireAt)
		if err != nil {
			return nil, mapError(err)
		}
		return r, nil
	case "delete_reminder":
		var req DeleteReminderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.reminders.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return StatusResponse{Status: "deleted"}, nil
	case "check_due":
		due, err := h.reminders.CheckDue(ctx, h.now())
		if err != nil {
			return nil, mapError(err)
		}
		return nonNil(due), nil

	// Timer
	case "timer_start":
		var req TimerStartParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		now := h.now()
		if err := h.engine.Start(now, time.Duration(req.DurationSeconds)*time.Second); err != nil {
			return nil, mapError(err)
		}
		return timerStatus(h.engine.Status(now)), nil
	case "timer_pause":
		now := h.now()
		if err := h.engine.Pause(now); err != nil {
			return nil, mapError(err)
		}
		return timerStatus(h.engine.Status(now)), nil
	case "timer_resume":
		now := h.now()
		if err := h.engine.Resume(now); err != nil {
			return nil, mapError(err)
		}
		return timerStatus(h.engine.Status(now)), nil
	case "timer_reset":
		h.engine.Reset()
		return timerStatus(h.engine.Status(h.now())), nil
	case "timer_status":
		return timerStatus(h.engine.Tick(h.now())), nil

	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

// dayOrToday resolves an optional day parameter against the clock.
func (h *Handler) dayOrToday(day string) habit.Day {
	if day == "" {
		return habit.DayOf(h.now())
	}
	return habit.Day(day)
}

// nonNil keeps empty list responses as [] rather than null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
