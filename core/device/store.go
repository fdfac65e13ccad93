package device

import "context"

// Store is the primary record store consumed by the build and search paths.
// Implementations must be safe for concurrent reads; the only mutation is
// SaveDescription, driven by the summarization pass of a build.
type Store interface {
	// All returns every record in stable store order.
	All(ctx context.Context) ([]Record, error)

	// Get returns the record with the given id, or ErrRecordNotFound.
	Get(ctx context.Context, id int) (Record, error)

	// SaveDescription persists a generated description onto a record.
	SaveDescription(ctx context.Context, id int, description string) error
}
