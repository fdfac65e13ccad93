package embedder_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicefinder/core/embedder"
)

// stubProvider derives each vector from its text so alignment violations
// are detectable in assertions.
type stubProvider struct {
	mu       sync.Mutex
	batches  [][]string
	failAt   string
	short    bool
	maxBatch int
}

func (p *stubProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	p.mu.Lock()
	p.batches = append(p.batches, texts)
	p.mu.Unlock()

	if p.maxBatch > 0 && len(texts) > p.maxBatch {
		return nil, fmt.Errorf("batch too large: %d", len(texts))
	}

	out := make([][]float32, 0, len(texts))
	for _, text := range texts {
		if text == p.failAt {
			return nil, errors.New("provider exploded")
		}
		var sum float32
		for _, r := range text {
			sum += float32(r)
		}
		out = append(out, []float32{sum, float32(len(text)), 0})
	}
	if p.short && len(out) > 1 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (p *stubProvider) Dimensions() int { return 3 }

func texts(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("payload number %d", i)
	}
	return out
}

func TestEmbedAllAlignmentAcrossChunkSizes(t *testing.T) {
	t.Parallel()

	input := texts(25)
	for _, size := range []int{1, 2, 7, 24, 25, 96} {
		t.Run(fmt.Sprintf("chunk size %d", size), func(t *testing.T) {
			t.Parallel()
			b := embedder.New(&stubProvider{}, embedder.WithChunkSize(size))

			vectors, err := b.EmbedAll(context.Background(), input)
			require.NoError(t, err)
			require.Len(t, vectors, len(input))

			for i, vec := range vectors {
				assert.Equal(t, float32(len(input[i])), vec[1], "vector %d misaligned", i)
			}
		})
	}
}

func TestEmbedAllAlignmentWithParallelChunks(t *testing.T) {
	t.Parallel()

	input := texts(200)
	b := embedder.New(&stubProvider{},
		embedder.WithChunkSize(7),
		embedder.WithParallelism(8))

	vectors, err := b.EmbedAll(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, vectors, len(input))
	for i, vec := range vectors {
		assert.Equal(t, float32(len(input[i])), vec[1], "vector %d misaligned", i)
	}
}

func TestEmbedAllSendsFinalShortChunk(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	b := embedder.New(provider, embedder.WithChunkSize(10))

	_, err := b.EmbedAll(context.Background(), texts(23))
	require.NoError(t, err)

	require.Len(t, provider.batches, 3)
	assert.Len(t, provider.batches[2], 3)
}

func TestEmbedAllRejectsEmptyText(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	b := embedder.New(provider)

	_, err := b.EmbedAll(context.Background(), []string{"ok", "", "also ok"})
	require.ErrorIs(t, err, embedder.ErrEmptyText)
	assert.Empty(t, provider.batches, "no provider call may happen on invalid input")
}

func TestEmbedAllAbortsWholeOperationOnChunkFailure(t *testing.T) {
	t.Parallel()

	input := texts(30)
	b := embedder.New(&stubProvider{failAt: input[17]}, embedder.WithChunkSize(5))

	vectors, err := b.EmbedAll(context.Background(), input)
	require.ErrorIs(t, err, embedder.ErrEmbeddingFailed)
	assert.Nil(t, vectors, "no partial vector set may escape")
}

func TestEmbedAllDetectsCountMismatch(t *testing.T) {
	t.Parallel()

	b := embedder.New(&stubProvider{short: true}, embedder.WithChunkSize(10))

	_, err := b.EmbedAll(context.Background(), texts(10))
	require.ErrorIs(t, err, embedder.ErrCountMismatch)
}

func TestEmbedSingle(t *testing.T) {
	t.Parallel()

	b := embedder.New(&stubProvider{})
	vec, err := b.Embed(context.Background(), "lightweight laptop")
	require.NoError(t, err)
	assert.Len(t, vec, 3)
	assert.Equal(t, float32(len("lightweight laptop")), vec[1])
}

func TestEmbedAllEmptyInput(t *testing.T) {
	t.Parallel()

	b := embedder.New(&stubProvider{})
	vectors, err := b.EmbedAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
}
