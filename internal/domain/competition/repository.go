package competition

import "context"

// Repository exposes competition catalog operations.
type Repository interface {
	List(ctx context.Context) ([]Competition, error)
	GetByID(ctx context.Context, id string) (Competition, bool, error)
	Upsert(ctx context.Context, comp Competition) error
}
