package vectorindex

import "context"

// Entry is one indexed vector. ID must equal the originating device
// record's id; Payload optionally carries display fields alongside the
// vector.
type Entry struct {
	ID      int
	Vector  []float32
	Payload map[string]any
}

// Hit is a single search result: the entry id and its similarity score.
type Hit struct {
	ID    int
	Score float32
}

// DefaultUploadBatchSize is how many entries are written per bulk request.
const DefaultUploadBatchSize = 256

// Index is the similarity-search service contract consumed by the build
// and query paths.
type Index interface {
	// Recreate destroys the named collection if it exists and creates a
	// fresh one sized for dimension-length vectors under cosine
	// similarity.
	Recreate(ctx context.Context, collection string, dimension int) error

	// Upload writes entries in batches of batchSize. Ids are taken from
	// the entries, never assigned by the service.
	Upload(ctx context.Context, collection string, entries []Entry, batchSize int) error

	// Exists reports whether the named collection exists.
	Exists(ctx context.Context, collection string) (bool, error)

	// Count returns the number of entries in the collection.
	Count(ctx context.Context, collection string) (int, error)

	// Search returns up to limit hits ranked by similarity descending.
	// Searching a missing collection returns ErrCollectionNotFound.
	Search(ctx context.Context, collection string, vector []float32, limit int) ([]Hit, error)
}
