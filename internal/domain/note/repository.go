package note

import "context"

// Repository is the owner-scoped store boundary. Search results come back
// ranked by relevance, best match first.
type Repository interface {
	List(ctx context.Context, ownerID int64) ([]Note, error)
	Get(ctx context.Context, ownerID, noteID int64) (*Note, error)
	Create(ctx context.Context, n *Note) error
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, ownerID, noteID int64) error
	Search(ctx context.Context, ownerID int64, query string) ([]Note, error)
}
