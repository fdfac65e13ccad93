package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/devicefinder/core/classifier"
	"github.com/dmitrymomot/devicefinder/core/composer"
	"github.com/dmitrymomot/devicefinder/core/device"
	"github.com/dmitrymomot/devicefinder/core/vectorindex"
	"github.com/dmitrymomot/devicefinder/pkg/vecfile"
)

// Embedder is the batch embedding capability the build pipeline needs.
type Embedder interface {
	EmbedAll(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}

// Options control a single build run.
type Options struct {
	// ForceEmbed recomputes vectors even when a valid disk cache exists.
	ForceEmbed bool

	// ForceUpload rebuilds the collection even when it already exists.
	// Without it an existing collection is left untouched.
	ForceUpload bool
}

// Result reports what a build run did.
type Result struct {
	RunID    uuid.UUID
	Records  int
	Embedded bool // vectors were recomputed rather than read from cache
	Uploaded bool // collection was recreated and populated
	Elapsed  time.Duration
}

// Builder runs the record-to-collection pipeline.
type Builder struct {
	store      device.Store
	registry   *classifier.Registry
	embedder   Embedder
	index      vectorindex.Index
	collection string

	locker    Locker
	cachePath string
	batchSize int
	log       *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLocker replaces the default in-process locker; pass a RedisLocker
// to serialize builds across processes.
func WithLocker(l Locker) Option {
	return func(b *Builder) {
		if l != nil {
			b.locker = l
		}
	}
}

// WithVectorCache enables the on-disk vector cache at path.
func WithVectorCache(path string) Option {
	return func(b *Builder) { b.cachePath = path }
}

// WithUploadBatchSize sets how many entries go per upload batch.
func WithUploadBatchSize(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithLogger sets the logger used for build progress reporting.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// New wires a build pipeline targeting the named collection.
func New(store device.Store, registry *classifier.Registry, embedder Embedder, index vectorindex.Index, collection string, opts ...Option) *Builder {
	b := &Builder{
		store:      store,
		registry:   registry,
		embedder:   embedder,
		index:      index,
		collection: collection,
		locker:     NewMutexLocker(),
		batchSize:  vectorindex.DefaultUploadBatchSize,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs the full pipeline under the collection lock. When the
// collection already exists and opts.ForceUpload is false, the run stops
// after composing payloads and reports Uploaded=false.
func (b *Builder) Build(ctx context.Context, opts Options) (Result, error) {
	release, err := b.locker.TryLock(ctx, b.collection)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			b.log.ErrorContext(ctx, "failed to release build lock",
				slog.String("collection", b.collection),
				slog.Any("error", err))
		}
	}()

	res := Result{RunID: uuid.New()}
	start := time.Now()
	log := b.log.With(slog.String("run_id", res.RunID.String()), slog.String("collection", b.collection))
	log.InfoContext(ctx, "build started")

	records, err := b.store.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load records: %w", err)
	}
	if len(records) == 0 {
		return Result{}, ErrNoRecords
	}
	res.Records = len(records)

	exists, err := b.index.Exists(ctx, b.collection)
	if err != nil {
		return Result{}, fmt.Errorf("check collection: %w", err)
	}
	if exists && !opts.ForceUpload {
		log.InfoContext(ctx, "collection exists, skipping rebuild")
		res.Elapsed = time.Since(start)
		return res, nil
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = composer.Compose(rec, b.registry.Classify(rec))
	}

	vectors, embedded, err := b.vectorsFor(ctx, log, texts, opts.ForceEmbed)
	if err != nil {
		return Result{}, err
	}
	res.Embedded = embedded

	entries := make([]vectorindex.Entry, len(records))
	for i, rec := range records {
		entries[i] = vectorindex.Entry{
			ID:     rec.ID,
			Vector: vectors[i],
			Payload: map[string]any{
				"name": rec.Name,
				"mpn":  rec.MPN,
			},
		}
		if rec.Description != "" {
			entries[i].Payload["description"] = rec.Description
		}
	}

	if err := b.index.Recreate(ctx, b.collection, b.embedder.Dimensions()); err != nil {
		return Result{}, err
	}
	if err := b.index.Upload(ctx, b.collection, entries, b.batchSize); err != nil {
		return Result{}, err
	}
	res.Uploaded = true

	count, err := b.index.Count(ctx, b.collection)
	if err != nil {
		return Result{}, fmt.Errorf("verify collection: %w", err)
	}
	if count != len(records) {
		return Result{}, fmt.Errorf("%w: indexed %d, have %d records", ErrCountMismatch, count, len(records))
	}

	res.Elapsed = time.Since(start)
	log.InfoContext(ctx, "build finished",
		slog.Int("records", res.Records),
		slog.Bool("embedded", res.Embedded),
		slog.Duration("elapsed", res.Elapsed))
	return res, nil
}

// vectorsFor returns one vector per text, from the disk cache when it is
// present and still matches the corpus, otherwise from the provider.
func (b *Builder) vectorsFor(ctx context.Context, log *slog.Logger, texts []string, force bool) ([][]float32, bool, error) {
	if b.cachePath != "" && !force {
		cached, err := vecfile.Read(b.cachePath)
		switch {
		case err == nil && len(cached) == len(texts) && validDims(cached, b.embedder.Dimensions()):
			log.InfoContext(ctx, "using cached vectors", slog.String("path", b.cachePath))
			return cached, false, nil
		case err == nil:
			log.WarnContext(ctx, "vector cache does not match corpus, re-embedding",
				slog.Int("cached", len(cached)), slog.Int("records", len(texts)))
		case !errors.Is(err, os.ErrNotExist):
			log.WarnContext(ctx, "vector cache unreadable, re-embedding", slog.Any("error", err))
		}
	}

	vectors, err := b.embedder.EmbedAll(ctx, texts)
	if err != nil {
		return nil, false, err
	}

	if b.cachePath != "" {
		if err := vecfile.Write(b.cachePath, vectors); err != nil {
			log.WarnContext(ctx, "failed to write vector cache", slog.Any("error", err))
		}
	}
	return vectors, true, nil
}

func validDims(vectors [][]float32, dim int) bool {
	for _, v := range vectors {
		if len(v) != dim {
			return false
		}
	}
	return true
}
