package vectorindex

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Memory is an exact cosine-scan index held in process memory. It exists
// for tests and small corpora; the contract matches the OpenSearch
// implementation, including full-rebuild Recreate semantics.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

type memCollection struct {
	dimension int
	entries   []Entry
}

// NewMemory creates an empty in-memory index.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]*memCollection)}
}

// Recreate drops any prior collection contents and registers a fresh one.
func (m *Memory) Recreate(ctx context.Context, collection string, dimension int) error {
	if dimension < 1 {
		return fmt.Errorf("%w: dimension %d", ErrRecreateFailed, dimension)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = &memCollection{dimension: dimension}
	return nil
}

// Upload appends entries; batchSize is irrelevant in memory but vectors
// are still validated against the collection dimension.
func (m *Memory) Upload(ctx context.Context, collection string, entries []Entry, batchSize int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	for _, e := range entries {
		if len(e.Vector) != c.dimension {
			return fmt.Errorf("%w: entry %d has %d, collection wants %d",
				ErrDimensionMismatch, e.ID, len(e.Vector), c.dimension)
		}
	}
	c.entries = append(c.entries, entries...)
	return nil
}

// Exists reports whether the collection is registered.
func (m *Memory) Exists(ctx context.Context, collection string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.collections[collection]
	return ok, nil
}

// Count returns the number of stored entries.
func (m *Memory) Count(ctx context.Context, collection string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.collections[collection]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	return len(c.entries), nil
}

// Search scans every entry and returns the limit most similar, cosine
// descending.
func (m *Memory) Search(ctx context.Context, collection string, vector []float32, limit int) ([]Hit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	if len(vector) != c.dimension {
		return nil, fmt.Errorf("%w: query has %d, collection wants %d",
			ErrDimensionMismatch, len(vector), c.dimension)
	}

	hits := make([]Hit, 0, len(c.entries))
	for _, e := range c.entries {
		hits = append(hits, Hit{ID: e.ID, Score: cosine(vector, e.Vector)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// cosine computes cosine similarity; zero-magnitude vectors score 0.
func cosine(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
