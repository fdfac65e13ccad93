// Package vectorizer implements the embedding providers behind the
// device indexing and query pipelines. Each provider turns payload text
// into fixed-size float32 vectors; the core/embedder batcher drives them
// chunk by chunk.
//
// OpenAI and Google AI are the production providers. Hash is a
// deterministic local provider for tests and offline development: same
// text, same vector, no network.
//
// The index and query paths must use the same provider, model, and
// dimension count, or similarity scores are meaningless.
package vectorizer
