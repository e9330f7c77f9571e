package mcp

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Tasks
		{
			Name:        "create_task",
			Description: "Create a new task",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Task title (non-empty)",
					},
					"due_at": map[string]any{
						"type":        "string",
						"description": "Optional due timestamp (RFC 3339)",
					},
				},
				"required": []string{"title"},
			},
		},
		{
			Name:        "get_task",
			Description: "Get a task by ID",
			InputSchema: idOnlySchema("Task ID"),
		},
		{
			Name:        "list_tasks",
			Description: "List all tasks in creation order",
			InputSchema: emptySchema(),
		},
		{
			Name:        "update_task",
			Description: "Update a task's title and/or due timestamp",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Task ID",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "New title",
					},
					"due_at": map[string]any{
						"type":        "string",
						"description": "New due timestamp (RFC 3339)",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "toggle_task",
			Description: "Flip a task between done and not done",
			InputSchema: idOnlySchema("Task ID"),
		},
		{
			Name:        "delete_task",
			Description: "Delete a task",
			InputSchema: idOnlySchema("Task ID"),
		},

		// Habits
		{
			Name:        "create_habit",
			Description: "Create a new habit to track daily",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Habit name (non-empty)",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "list_habits",
			Description: "List all habits with their completed days",
			InputSchema: emptySchema(),
		},
		{
			Name:        "mark_habit",
			Description: "Mark a habit done for a day (idempotent)",
			InputSchema: habitDaySchema(),
		},
		{
			Name:        "unmark_habit",
			Description: "Remove a habit completion for a day",
			InputSchema: habitDaySchema(),
		},
		{
			Name:        "habit_streak",
			Description: "Count consecutive completed days ending at a day",
			InputSchema: habitDaySchema(),
		},
		{
			Name:        "delete_habit",
			Description: "Delete a habit and its history",
			InputSchema: idOnlySchema("Habit ID"),
		},

		// Notes
		{
			Name:        "add_note",
			Description: "Add a free-form note",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "Note text (non-empty)",
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "get_note",
			Description: "Get a note by ID",
			InputSchema: idOnlySchema("Note ID"),
		},
		{
			Name:        "list_notes",
			Description: "List all notes in creation order",
			InputSchema: emptySchema(),
		},
		{
			Name:        "replace_note",
			Description: "Replace a note's text wholesale",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Note ID",
					},
					"text": map[string]any{
						"type":        "string",
						"description": "Replacement text (non-empty)",
					},
				},
				"required": []string{"id", "text"},
			},
		},
		{
			Name:        "search_notes",
			Description: "Search notes by case-insensitive substring",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search text",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        "delete_note",
			Description: "Delete a note",
			InputSchema: idOnlySchema("Note ID"),
		},

		// Reminders
		{
			Name:        "schedule_reminder",
			Description: "Schedule a one-shot reminder",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"message": map[string]any{
						"type":        "string",
						"description": "Reminder message (non-empty)",
					},
					"fire_at": map[string]any{
						"type":        "string",
						"description": "Delivery timestamp (RFC 3339)",
					},
				},
				"required": []string{"message", "fire_at"},
			},
		},
		{
			Name:        "list_reminders",
			Description: "List all reminders, fired or pending",
			InputSchema: emptySchema(),
		},
		{
			Name:        "reschedule_reminder",
			Description: "Re-arm a reminder at a new delivery time",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Reminder ID",
					},
					"fire_at": map[string]any{
						"type":        "string",
						"description": "New delivery timestamp (RFC 3339)",
					},
				},
				"required": []string{"id", "fire_at"},
			},
		},
		{
			Name:        "delete_reminder",
			Description: "Delete a reminder",
			InputSchema: idOnlySchema("Reminder ID"),
		},
		{
			Name:        "check_due",
			Description: "Collect reminders now due; each is delivered at most once",
			InputSchema: emptySchema(),
		},

		// Timer
		{
			Name:        "timer_start",
			Description: "Start the countdown timer (valid when idle or completed)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"duration_seconds": map[string]any{
						"type":        "integer",
						"description": "Countdown length in seconds (positive)",
					},
				},
				"required": []string{"duration_seconds"},
			},
		},
		{
			Name:        "timer_pause",
			Description: "Pause the running countdown",
			InputSchema: emptySchema(),
		},
		{
			Name:        "timer_resume",
			Description: "Resume a paused countdown",
			InputSchema: emptySchema(),
		},
		{
			Name:        "timer_reset",
			Description: "Return the timer to idle from any state",
			InputSchema: emptySchema(),
		},
		{
			Name:        "timer_status",
			Description: "Poll the countdown; detects completion by elapsed time",
			InputSchema: emptySchema(),
		},
	}
}

func emptySchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

func idOnlySchema(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"id"},
	}
}

func habitDaySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": "Habit ID",
			},
			"day": map[string]any{
				"type":        "string",
				"description": "Calendar day YYYY-MM-DD in UTC (defaults to today)",
			},
		},
		"required": []string{"id"},
	}
}
