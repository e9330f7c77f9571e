package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `Daybook is a local personal assistant: tasks, daily habits,
free-form notes, one-shot reminders and a single pomodoro-style
countdown timer. Everything except the timer is persisted to JSON
documents in the data directory; the timer lives only for the life of
the process.

Workflow hints:

- Poll timer_status and check_due on whatever cadence suits your UI;
  both are safe to call repeatedly. A reminder is returned by
  check_due exactly once unless rescheduled.
- Habit days are UTC calendar days (YYYY-MM-DD). mark_habit without a
  day uses today; marking the same day twice is a no-op.
- Tasks toggle freely between done and not done.
- Note text is only ever replaced wholesale via replace_note.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "daybook://docs/timer",
		Name:        "docs_timer",
		Title:       "Countdown timer lifecycle",
		Description: "States and transitions of the single countdown session.",
		Content: `# Countdown timer lifecycle

States: idle, running, paused, completed.

- timer_start: idle or completed only; needs a positive duration.
- timer_pause: running only; freezes the remainder.
- timer_resume: paused only; continues from the frozen remainder.
- timer_status: recomputes the remainder from the wall clock and
  declares completion when it reaches zero. Poll it as often or as
  rarely as you like; remaining time is derived, never counted down.
- timer_reset: any state back to idle.

Invalid transitions return INVALID_TRANSITION rather than changing
state.
`,
	},
	{
		URI:         "daybook://docs/storage",
		Name:        "docs_storage",
		Title:       "Data directory layout",
		Description: "Where records live on disk and what a CORRUPT_STORE error means.",
		Content: `# Data directory layout

Each record kind is one human-readable JSON document in the data
directory: tasks.json, habits.json, notes.json, reminders.json. A
document is rewritten in full, through an atomic temp-file swap, on
every mutation.

A missing document is an empty collection. A document that fails to
parse aborts startup with CORRUPT_STORE: the assistant never discards
unreadable data silently. Fix or move the file and restart.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
