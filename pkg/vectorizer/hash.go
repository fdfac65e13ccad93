package vectorizer

import (
	"context"
	"hash/fnv"
	"math"
)

// Hash is a deterministic offline Vectorizer: vectors are derived from
// token hashes, so identical texts always embed identically and related
// texts share components. It has no semantic understanding and exists
// for tests and development without API credentials.
type Hash struct {
	dimensions int
}

// NewHash creates a hash vectorizer producing dim-sized vectors.
func NewHash(dim int) *Hash {
	if dim < 1 {
		dim = 64
	}
	return &Hash{dimensions: dim}
}

// Embed converts a single text to a vector.
func (h *Hash) Embed(ctx context.Context, text string) ([]float32, error) {
	return h.embed(text), nil
}

// EmbedBatch converts texts to vectors, preserving input order.
func (h *Hash) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = h.embed(text)
	}
	return vectors, nil
}

// Dimensions returns the configured vector size.
func (h *Hash) Dimensions() int {
	return h.dimensions
}

// embed hashes each whitespace token into a bucket, then normalizes the
// bucket counts to unit length so cosine scores stay in [0, 1].
func (h *Hash) embed(text string) []float32 {
	vec := make([]float32, h.dimensions)

	start := -1
	for i := 0; i <= len(text); i++ {
		atEnd := i == len(text)
		isSpace := !atEnd && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n')
		switch {
		case start < 0 && !atEnd && !isSpace:
			start = i
		case start >= 0 && (atEnd || isSpace):
			f := fnv.New32a()
			f.Write([]byte(text[start:i]))
			vec[int(f.Sum32())%h.dimensions]++
			start = -1
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec
}
