package todo

import "context"

// Repository is the owner-scoped store boundary. Every method that touches
// an existing todo takes the owner id and must apply it as a filter.
type Repository interface {
	List(ctx context.Context, ownerID int64) ([]Todo, error)
	Get(ctx context.Context, ownerID, todoID int64) (*Todo, error)
	Create(ctx context.Context, t *Todo) error
	Update(ctx context.Context, t *Todo) error
	Delete(ctx context.Context, ownerID, todoID int64) error
}
