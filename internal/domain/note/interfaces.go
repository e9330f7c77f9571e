package note

import "context"

// Repository manages note persistence.
type Repository interface {
	Create(ctx context.Context, n *Note) error
	Get(ctx context.Context, id string) (*Note, error)
	List(ctx context.Context) ([]Note, error)
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, id string) error
}
