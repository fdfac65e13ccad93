package vectorindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	opensearchgo "github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	"golang.org/x/sync/errgroup"
)

const vectorField = "embedding"

// OpenSearch implements Index against a k-NN enabled OpenSearch cluster.
// Collections map to indices with a single knn_vector field under cosine
// similarity.
type OpenSearch struct {
	client      *opensearchgo.Client
	parallelism int
	log         *slog.Logger
}

// OpenSearchOption configures an OpenSearch index.
type OpenSearchOption func(*OpenSearch)

// WithUploadParallelism sets how many bulk requests may be in flight at
// once during Upload.
func WithUploadParallelism(n int) OpenSearchOption {
	return func(o *OpenSearch) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithLogger sets the logger used for lifecycle reporting.
func WithLogger(log *slog.Logger) OpenSearchOption {
	return func(o *OpenSearch) {
		if log != nil {
			o.log = log
		}
	}
}

// NewOpenSearch wraps an existing cluster client; see
// integration/database/opensearch for connection setup.
func NewOpenSearch(client *opensearchgo.Client, opts ...OpenSearchOption) *OpenSearch {
	o := &OpenSearch{
		client:      client,
		parallelism: 10,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Recreate deletes the index if present and creates a fresh k-NN index
// sized for dimension-length vectors.
func (o *OpenSearch) Recreate(ctx context.Context, collection string, dimension int) error {
	if dimension < 1 {
		return fmt.Errorf("%w: dimension %d", ErrRecreateFailed, dimension)
	}

	del := opensearchapi.IndicesDeleteRequest{
		Index:             []string{collection},
		IgnoreUnavailable: opensearchapi.BoolPtr(true),
	}
	res, err := del.Do(ctx, o.client)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrRecreateFailed, collection, err)
	}
	drainAndClose(res.Body)
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%w: delete %s: %s", ErrRecreateFailed, collection, res.Status())
	}

	mapping := map[string]any{
		"settings": map[string]any{
			"index": map[string]any{"knn": true},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				vectorField: map[string]any{
					"type":      "knn_vector",
					"dimension": dimension,
					"method": map[string]any{
						"name":       "hnsw",
						"space_type": "cosinesimil",
					},
				},
			},
		},
	}
	body, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("%w: encode mapping: %v", ErrRecreateFailed, err)
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: collection,
		Body:  bytes.NewReader(body),
	}
	res, err = create.Do(ctx, o.client)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrRecreateFailed, collection, err)
	}
	defer drainAndClose(res.Body)
	if res.IsError() {
		return fmt.Errorf("%w: create %s: %s", ErrRecreateFailed, collection, res.Status())
	}

	o.log.InfoContext(ctx, "collection recreated",
		slog.String("collection", collection),
		slog.Int("dimension", dimension))
	return nil
}

// Upload writes entries in bulk batches, ids set explicitly from the
// entries. Batches may run in parallel; a refresh after the last batch
// makes the collection immediately queryable.
func (o *OpenSearch) Upload(ctx context.Context, collection string, entries []Entry, batchSize int) error {
	if batchSize < 1 {
		batchSize = DefaultUploadBatchSize
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for start := 0; start < len(entries); start += batchSize {
		batch := entries[start:min(start+batchSize, len(entries))]
		g.Go(func() error {
			return o.bulkIndex(gctx, collection, batch)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	refresh := opensearchapi.IndicesRefreshRequest{Index: []string{collection}}
	res, err := refresh.Do(ctx, o.client)
	if err != nil {
		return fmt.Errorf("%w: refresh %s: %v", ErrUploadFailed, collection, err)
	}
	drainAndClose(res.Body)

	o.log.InfoContext(ctx, "collection uploaded",
		slog.String("collection", collection),
		slog.Int("entries", len(entries)))
	return nil
}

func (o *OpenSearch) bulkIndex(ctx context.Context, collection string, batch []Entry) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, e := range batch {
		action := map[string]any{
			"index": map[string]any{"_id": strconv.Itoa(e.ID)},
		}
		doc := map[string]any{vectorField: e.Vector}
		if e.Payload != nil {
			doc["payload"] = e.Payload
		}
		if err := enc.Encode(action); err != nil {
			return fmt.Errorf("%w: encode action: %v", ErrUploadFailed, err)
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("%w: encode document: %v", ErrUploadFailed, err)
		}
	}

	req := opensearchapi.BulkRequest{Index: collection, Body: &buf}
	res, err := req.Do(ctx, o.client)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer drainAndClose(res.Body)
	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrUploadFailed, res.Status())
	}

	var result struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: decode bulk response: %v", ErrUploadFailed, err)
	}
	if result.Errors {
		return fmt.Errorf("%w: bulk response reported item failures", ErrUploadFailed)
	}
	return nil
}

// Exists reports whether the index exists.
func (o *OpenSearch) Exists(ctx context.Context, collection string) (bool, error) {
	req := opensearchapi.IndicesExistsRequest{Index: []string{collection}}
	res, err := req.Do(ctx, o.client)
	if err != nil {
		return false, fmt.Errorf("check collection %s: %w", collection, err)
	}
	drainAndClose(res.Body)

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("check collection %s: %s", collection, res.Status())
	}
}

// Count returns the number of documents in the index.
func (o *OpenSearch) Count(ctx context.Context, collection string) (int, error) {
	req := opensearchapi.CountRequest{Index: []string{collection}}
	res, err := req.Do(ctx, o.client)
	if err != nil {
		return 0, fmt.Errorf("count collection %s: %w", collection, err)
	}
	defer drainAndClose(res.Body)

	if res.StatusCode == http.StatusNotFound {
		return 0, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	if res.IsError() {
		return 0, fmt.Errorf("count collection %s: %s", collection, res.Status())
	}

	var result struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode count response: %w", err)
	}
	return result.Count, nil
}

// Search runs a k-NN query and returns hits ranked by score descending,
// exactly as the cluster ordered them.
func (o *OpenSearch) Search(ctx context.Context, collection string, vector []float32, limit int) ([]Hit, error) {
	query := map[string]any{
		"size":    limit,
		"_source": false,
		"query": map[string]any{
			"knn": map[string]any{
				vectorField: map[string]any{
					"vector": vector,
					"k":      limit,
				},
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("encode search query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{collection},
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, o.client)
	if err != nil {
		return nil, fmt.Errorf("search collection %s: %w", collection, err)
	}
	defer drainAndClose(res.Body)

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	if res.IsError() {
		return nil, fmt.Errorf("search collection %s: %s", collection, res.Status())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				ID    string  `json:"_id"`
				Score float32 `json:"_score"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	hits := make([]Hit, 0, len(result.Hits.Hits))
	for _, h := range result.Hits.Hits {
		id, err := strconv.Atoi(h.ID)
		if err != nil {
			return nil, fmt.Errorf("non-numeric document id %q in collection %s", h.ID, collection)
		}
		hits = append(hits, Hit{ID: id, Score: h.Score})
	}
	return hits, nil
}

func drainAndClose(body io.ReadCloser) {
	if body != nil {
		_, _ = io.Copy(io.Discard, body)
		_ = body.Close()
	}
}
