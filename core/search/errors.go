package search

import "errors"

var (
	// ErrEmptyQuery indicates a blank query string.
	ErrEmptyQuery = errors.New("empty search query")

	// ErrDataIntegrity indicates the index returned an id the primary
	// store does not know; the collection needs a rebuild.
	ErrDataIntegrity = errors.New("index and store out of sync")

	// ErrSearchFailed wraps provider or index failures during a query.
	ErrSearchFailed = errors.New("search failed")
)
