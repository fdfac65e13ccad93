package embedder

import "errors"

var (
	// ErrEmptyText indicates an empty input text; embedding an empty
	// payload is a caller error caught before any provider call is made.
	ErrEmptyText = errors.New("empty text in embedding input")

	// ErrEmbeddingFailed wraps a provider failure on any chunk.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrCountMismatch indicates the provider returned a different number
	// of vectors than texts sent in a chunk.
	ErrCountMismatch = errors.New("embedding count mismatch")
)
