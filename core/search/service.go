package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/devicefinder/core/device"
	"github.com/dmitrymomot/devicefinder/core/vectorindex"
)

// DefaultLimit is how many results a query returns when the caller does
// not ask for a specific count.
const DefaultLimit = 5

// Embedder turns a query string into a vector. The implementation must
// be the same provider and model used to build the collection, or the
// scores are meaningless.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Result pairs a hydrated device record with its similarity score.
type Result struct {
	Record device.Record
	Score  float32
}

// Service runs ranked semantic queries over one collection.
type Service struct {
	embedder   Embedder
	index      vectorindex.Index
	store      device.Store
	collection string
	log        *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for query reporting.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New wires a search service over an already-built collection.
func New(embedder Embedder, index vectorindex.Index, store device.Store, collection string, opts ...Option) *Service {
	s := &Service{
		embedder:   embedder,
		index:      index,
		store:      store,
		collection: collection,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search embeds query, finds the limit nearest entries, and hydrates
// each hit from the store. Results keep the index ordering, similarity
// descending. A limit below 1 falls back to DefaultLimit.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", ErrSearchFailed, err)
	}

	hits, err := s.index.Search(ctx, s.collection, vector, limit)
	if err != nil {
		if errors.Is(err, vectorindex.ErrCollectionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range hits {
		rec, err := s.store.Get(ctx, hit.ID)
		if err != nil {
			if errors.Is(err, device.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: indexed id %d missing from store", ErrDataIntegrity, hit.ID)
			}
			return nil, fmt.Errorf("%w: hydrate id %d: %v", ErrSearchFailed, hit.ID, err)
		}
		results = append(results, Result{Record: rec, Score: hit.Score})
	}

	s.log.DebugContext(ctx, "query answered",
		slog.String("collection", s.collection),
		slog.Int("results", len(results)))
	return results, nil
}
