package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is how many texts are sent per provider call.
const DefaultChunkSize = 96

// Provider is the external embedding capability consumed by the batcher.
// Implementations live in pkg/vectorizer.
type Provider interface {
	// EmbedBatch converts texts to vectors, preserving input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the vector size the provider produces.
	Dimensions() int
}

// Batcher embeds ordered payload lists through a Provider, chunk by chunk.
type Batcher struct {
	provider    Provider
	chunkSize   int
	parallelism int
	log         *slog.Logger
}

// Option configures a Batcher.
type Option func(*Batcher)

// WithChunkSize sets how many texts are sent per provider call.
func WithChunkSize(size int) Option {
	return func(b *Batcher) {
		if size > 0 {
			b.chunkSize = size
		}
	}
}

// WithParallelism sets how many chunks may be in flight at once. The
// default of 1 keeps providers with strict per-minute rate limits happy;
// raise it for providers that tolerate concurrent requests.
func WithParallelism(n int) Option {
	return func(b *Batcher) {
		if n > 0 {
			b.parallelism = n
		}
	}
}

// WithLogger sets the logger used for per-chunk progress reporting.
func WithLogger(log *slog.Logger) Option {
	return func(b *Batcher) {
		if log != nil {
			b.log = log
		}
	}
}

// New creates a batcher over the given provider.
func New(provider Provider, opts ...Option) *Batcher {
	b := &Batcher{
		provider:    provider,
		chunkSize:   DefaultChunkSize,
		parallelism: 1,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Dimensions returns the vector size of the underlying provider.
func (b *Batcher) Dimensions() int {
	return b.provider.Dimensions()
}

// EmbedAll embeds every text and returns vectors aligned with the input:
// len(result) == len(texts) and result[i] corresponds to texts[i]. Empty
// texts are rejected before any provider call. A failure on any chunk
// aborts the whole operation and no vectors are returned.
func (b *Batcher) EmbedAll(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	for i, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyText, i)
		}
	}

	parts := chunks(texts, b.chunkSize)
	vectors := make([][]float32, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)

	start := time.Now()
	for i, part := range parts {
		g.Go(func() error {
			b.log.DebugContext(gctx, "embedding chunk",
				slog.Int("chunk", i+1),
				slog.Int("of", len(parts)),
				slog.Int("size", len(part.texts)))

			got, err := b.provider.EmbedBatch(gctx, part.texts)
			if err != nil {
				return fmt.Errorf("%w: chunk at offset %d: %v", ErrEmbeddingFailed, part.offset, err)
			}
			if len(got) != len(part.texts) {
				return fmt.Errorf("%w: chunk at offset %d: sent %d, got %d",
					ErrCountMismatch, part.offset, len(part.texts), len(got))
			}

			// Each chunk writes a disjoint region, so no locking is needed.
			for j, vec := range got {
				vectors[part.offset+j] = vec
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.log.InfoContext(ctx, "embedding complete",
		slog.Int("texts", len(texts)),
		slog.Int("chunks", len(parts)),
		slog.Duration("elapsed", time.Since(start)))
	return vectors, nil
}

// Embed embeds a single text; used by the query path.
func (b *Batcher) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := b.EmbedAll(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}
