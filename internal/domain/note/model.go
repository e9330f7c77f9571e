package note

import "time"

// Note is a free-form text record. The text is only ever replaced
// wholesale; there are no partial edits and no links to other entities.
type Note struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}
