package reminder

import (
	"context"
	"time"
)

// Repository manages reminder persistence.
//
// ClaimDue is the at-most-once delivery gate: it must select every
// unfired reminder with fire_at <= now, mark it fired and persist the
// change as one operation under the collection lock, so that repeated
// or concurrent polling can never return the same reminder twice.
type Repository interface {
	Create(ctx context.Context, r *Reminder) error
	Get(ctx context.Context, id string) (*Reminder, error)
	List(ctx context.Context) ([]Reminder, error)
	Update(ctx context.Context, r *Reminder) error
	Delete(ctx context.Context, id string) error
	ClaimDue(ctx context.Context, now time.Time) ([]Reminder, error)
}
