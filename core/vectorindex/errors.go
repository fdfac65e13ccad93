package vectorindex

import "errors"

var (
	// ErrCollectionNotFound indicates a query against a collection that
	// does not exist; recoverable by running a build.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrUploadFailed indicates a write failure; fatal for the current
	// build, which must be retried as a whole.
	ErrUploadFailed = errors.New("collection upload failed")

	// ErrRecreateFailed indicates the collection could not be destroyed
	// or created.
	ErrRecreateFailed = errors.New("collection recreate failed")

	// ErrDimensionMismatch indicates a vector whose length differs from
	// the collection's configured dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
