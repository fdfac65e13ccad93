package builder

import "errors"

var (
	// ErrBuildInProgress indicates another build holds the collection lock.
	ErrBuildInProgress = errors.New("build already in progress")

	// ErrNoRecords indicates the store returned an empty corpus; building
	// an empty collection is almost certainly a configuration mistake.
	ErrNoRecords = errors.New("no records to index")

	// ErrCountMismatch indicates post-upload verification found a different
	// number of entries than records were indexed.
	ErrCountMismatch = errors.New("indexed count does not match record count")
)
