package habit

import "time"

// dayLayout is the canonical on-disk form of a calendar day. All day
// arithmetic is done in UTC.
const dayLayout = "2006-01-02"

// Day is a calendar day in YYYY-MM-DD form.
type Day string

// DayOf returns the UTC calendar day containing t.
func DayOf(t time.Time) Day {
	return Day(t.UTC().Format(dayLayout))
}

// Valid reports whether d parses as a calendar day.
func (d Day) Valid() bool {
	_, err := time.Parse(dayLayout, string(d))
	return err == nil
}

// Prev returns the calendar day before d. Invalid days return "".
func (d Day) Prev() Day {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return ""
	}
	return DayOf(t.AddDate(0, 0, -1))
}

// Habit is a recurring practice with a set of completed days.
// A day appears at most once in Completions.
type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Completions []Day     `json:"completions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Completed reports whether day is marked done.
func (h *Habit) Completed(day Day) bool {
	for _, d := range h.Completions {
		if d == day {
			return true
		}
	}
	return false
}
