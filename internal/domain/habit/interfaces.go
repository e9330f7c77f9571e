package habit

import "context"

// Repository manages habit persistence.
type Repository interface {
	Create(ctx context.Context, h *Habit) error
	Get(ctx context.Context, id string) (*Habit, error)
	List(ctx context.Context) ([]Habit, error)
	Update(ctx context.Context, h *Habit) error
	Delete(ctx context.Context, id string) error
}
