package mcp

import (
	"time"

	"github.com/halvar/daybook/internal/domain/timer"
)

// ToolDefinition describes an MCP tool with its JSON schema.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// Task params

type CreateTaskParams struct {
	Title string     `json:"title"`
	DueAt *time.Time `json:"due_at,omitempty"`
}

type GetTaskParams struct {
	ID string `json:"id"`
}

type UpdateTaskParams struct {
	ID    string     `json:"id"`
	Title *string    `json:"title,omitempty"`
	DueAt *time.Time `json:"due_at,omitempty"`
}

type ToggleTaskParams struct {
	ID string `json:"id"`
}

type DeleteTaskParams struct {
	ID string `json:"id"`
}

// Habit params

type CreateHabitParams struct {
	Name string `json:"name"`
}

// MarkHabitParams marks or unmarks a completion. Day is YYYY-MM-DD
// (UTC) and defaults to today when omitted.
type MarkHabitParams struct {
	ID  string `json:"id"`
	Day string `json:"day,omitempty"`
}

type HabitStreakParams struct {
	ID  string `json:"id"`
	Day string `json:"day,omitempty"`
}

// HabitStreakResponse reports the consecutive-day streak ending at Day.
type HabitStreakResponse struct {
	HabitID string `json:"habit_id"`
	Day     string `json:"day"`
	Streak  int    `json:"streak"`
}

type DeleteHabitParams struct {
	ID string `json:"id"`
}

// Note params

type AddNoteParams struct {
	Text string `json:"text"`
}

type GetNoteParams struct {
	ID string `json:"id"`
}

type ReplaceNoteParams struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type SearchNotesParams struct {
	Query string `json:"query"`
}

type DeleteNoteParams struct {
	ID string `json:"id"`
}

// Reminder params

type ScheduleReminderParams struct {
	Message string    `json:"message"`
	FireAt  time.Time `json:"fire_at"`
}

type RescheduleReminderParams struct {
	ID     string    `json:"id"`
	FireAt time.Time `json:"fire_at"`
}

type DeleteReminderParams struct {
	ID string `json:"id"`
}

// Timer params

type TimerStartParams struct {
	DurationSeconds int64 `json:"duration_seconds"`
}

// TimerStatusResponse is the countdown snapshot handed to clients.
type TimerStatusResponse struct {
	State            timer.State `json:"state"`
	DurationSeconds  int64       `json:"duration_seconds"`
	RemainingSeconds int64       `json:"remaining_seconds"`
}

func timerStatus(snap timer.Snapshot) TimerStatusResponse {
	return TimerStatusResponse{
		State:            snap.State,
		DurationSeconds:  int64(snap.Duration / time.Second),
		RemainingSeconds: int64(snap.Remaining / time.Second),
	}
}

// StatusResponse acknowledges operations with no payload.
type StatusResponse struct {
	Status string `json:"status"`
}
