package builder_test

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicefinder/core/builder"
	"github.com/dmitrymomot/devicefinder/core/classifier"
	"github.com/dmitrymomot/devicefinder/core/device"
	"github.com/dmitrymomot/devicefinder/core/vectorindex"
)

type sliceStore struct {
	records []device.Record
}

func (s *sliceStore) All(ctx context.Context) ([]device.Record, error) {
	return s.records, nil
}

func (s *sliceStore) Get(ctx context.Context, id int) (device.Record, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return device.Record{}, device.ErrRecordNotFound
}

func (s *sliceStore) SaveDescription(ctx context.Context, id int, desc string) error {
	for i, r := range s.records {
		if r.ID == id {
			s.records[i].Description = desc
			return nil
		}
	}
	return device.ErrRecordNotFound
}

type countingEmbedder struct {
	calls atomic.Int64
}

func (e *countingEmbedder) EmbedAll(ctx context.Context, texts []string) ([][]float32, error) {
	e.calls.Add(1)
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = []float32{float32(len(t)), 1}
	}
	return out, nil
}

func (e *countingEmbedder) Dimensions() int { return 2 }

func laptops(n int) []device.Record {
	out := make([]device.Record, n)
	for i := range out {
		out[i] = device.Record{ID: i + 1, Name: "Laptop " + string(rune('A'+i%26))}
	}
	return out
}

func TestBuildPopulatesCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	idx := vectorindex.NewMemory()
	store := &sliceStore{records: laptops(7)}
	b := builder.New(store, classifier.NewRegistry(), &countingEmbedder{}, idx, "devices")

	res, err := b.Build(ctx, builder.Options{})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Records)
	assert.True(t, res.Embedded)
	assert.True(t, res.Uploaded)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", res.RunID.String())

	count, err := idx.Count(ctx, "devices")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	// Entry ids come from the records, so hits hydrate against the store.
	hits, err := idx.Search(ctx, "devices", []float32{1, 0}, 7)
	require.NoError(t, err)
	for _, h := range hits {
		_, err := store.Get(ctx, h.ID)
		assert.NoError(t, err)
	}
}

func TestBuildSkipsExistingCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	idx := vectorindex.NewMemory()
	emb := &countingEmbedder{}
	b := builder.New(&sliceStore{records: laptops(3)}, classifier.NewRegistry(), emb, idx, "devices")

	_, err := b.Build(ctx, builder.Options{})
	require.NoError(t, err)
	require.EqualValues(t, 1, emb.calls.Load())

	res, err := b.Build(ctx, builder.Options{})
	require.NoError(t, err)
	assert.False(t, res.Uploaded)
	assert.EqualValues(t, 1, emb.calls.Load())
}

func TestForceUploadRebuildsFromScratch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	idx := vectorindex.NewMemory()
	store := &sliceStore{records: laptops(10)}
	b := builder.New(store, classifier.NewRegistry(), &countingEmbedder{}, idx, "devices")

	_, err := b.Build(ctx, builder.Options{})
	require.NoError(t, err)

	store.records = laptops(4)
	res, err := b.Build(ctx, builder.Options{ForceUpload: true})
	require.NoError(t, err)
	assert.True(t, res.Uploaded)

	count, err := idx.Count(ctx, "devices")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestVectorCacheSkipsEmbedding(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := filepath.Join(t.TempDir(), "vectors.bin")
	emb := &countingEmbedder{}
	store := &sliceStore{records: laptops(5)}
	idx := vectorindex.NewMemory()
	b := builder.New(store, classifier.NewRegistry(), emb, idx, "devices",
		builder.WithVectorCache(cache))

	res, err := b.Build(ctx, builder.Options{})
	require.NoError(t, err)
	assert.True(t, res.Embedded)
	require.EqualValues(t, 1, emb.calls.Load())

	res, err = b.Build(ctx, builder.Options{ForceUpload: true})
	require.NoError(t, err)
	assert.False(t, res.Embedded)
	assert.EqualValues(t, 1, emb.calls.Load())

	res, err = b.Build(ctx, builder.Options{ForceUpload: true, ForceEmbed: true})
	require.NoError(t, err)
	assert.True(t, res.Embedded)
	assert.EqualValues(t, 2, emb.calls.Load())
}

func TestBuildLockContention(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	locker := builder.NewMutexLocker()

	release, err := locker.TryLock(ctx, "devices")
	require.NoError(t, err)

	b := builder.New(&sliceStore{records: laptops(2)}, classifier.NewRegistry(),
		&countingEmbedder{}, vectorindex.NewMemory(), "devices",
		builder.WithLocker(locker))

	_, err = b.Build(ctx, builder.Options{})
	assert.ErrorIs(t, err, builder.ErrBuildInProgress)

	require.NoError(t, release(ctx))

	_, err = b.Build(ctx, builder.Options{})
	assert.NoError(t, err)
}

func TestBuildEmptyStore(t *testing.T) {
	t.Parallel()

	b := builder.New(&sliceStore{}, classifier.NewRegistry(),
		&countingEmbedder{}, vectorindex.NewMemory(), "devices")

	_, err := b.Build(context.Background(), builder.Options{})
	assert.ErrorIs(t, err, builder.ErrNoRecords)
}
