package vectorizer

import "errors"

var (
	// ErrInvalidAPIKey indicates a missing or empty API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrModelNotSupported indicates an unknown embedding model.
	ErrModelNotSupported = errors.New("model not supported")

	// ErrInvalidDimensions indicates a dimension count the model cannot
	// produce.
	ErrInvalidDimensions = errors.New("invalid dimensions for model")

	// ErrBatchTooLarge indicates a batch beyond the provider's per-call
	// limit; the caller should chunk smaller.
	ErrBatchTooLarge = errors.New("batch size exceeds limit")

	// ErrNoEmbeddingReturned indicates the API answered without vectors.
	ErrNoEmbeddingReturned = errors.New("no embedding returned")

	// ErrEmbeddingCountMismatch indicates the API returned a different
	// number of vectors than texts sent.
	ErrEmbeddingCountMismatch = errors.New("embedding count mismatch")
)
