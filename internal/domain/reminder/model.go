package reminder

import "time"

// Reminder is a one-shot notification. Once Fired is set it never
// fires again unless explicitly rescheduled.
type Reminder struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	FireAt    time.Time `json:"fire_at"`
	Fired     bool      `json:"fired"`
	CreatedAt time.Time `json:"created_at"`
}

// Due reports whether the reminder should be delivered at now.
func (r *Reminder) Due(now time.Time) bool {
	return !r.Fired && !r.FireAt.After(now)
}
