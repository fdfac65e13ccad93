package vectorizer

import (
	"context"
	"fmt"
	"slices"

	"google.golang.org/genai"
)

// Google embedding models.
const (
	GoogleTextEmbedding005             = "text-embedding-005"
	GoogleTextMultilingualEmbedding002 = "text-multilingual-embedding-002"
)

var googleValidDims = []int{256, 768, 1536, 3072}

// Google implements Vectorizer over Google's Generative AI API, either
// the Gemini API or Vertex AI depending on construction.
type Google struct {
	client     *genai.Client
	model      string
	dimensions int
	maxBatch   int
}

// GoogleOption configures a Google vectorizer.
type GoogleOption func(*Google)

// WithGoogleModel selects the embedding model.
func WithGoogleModel(model string) GoogleOption {
	return func(g *Google) { g.model = model }
}

// WithGoogleDimensions sets the output vector size. Valid values are
// 256, 768, 1536 and 3072.
func WithGoogleDimensions(dims int) GoogleOption {
	return func(g *Google) { g.dimensions = dims }
}

// WithGoogleMaxBatchSize caps how many texts go per API call; the API
// allows at most 100.
func WithGoogleMaxBatchSize(size int) GoogleOption {
	return func(g *Google) {
		if size > 0 && size <= 100 {
			g.maxBatch = size
		}
	}
}

// NewGoogle creates a Gemini API vectorizer with key authentication.
// Defaults to the multilingual model at 768 dimensions.
func NewGoogle(ctx context.Context, apiKey string, opts ...GoogleOption) (*Google, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}
	return newGoogle(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, opts)
}

// NewGoogleVertexAI creates a Vertex AI vectorizer bound to a GCP
// project and location, authenticated through application default
// credentials.
func NewGoogleVertexAI(ctx context.Context, project, location string, opts ...GoogleOption) (*Google, error) {
	if project == "" || location == "" {
		return nil, fmt.Errorf("vertex ai requires project and location")
	}
	return newGoogle(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  project,
		Location: location,
	}, opts)
}

func newGoogle(ctx context.Context, config *genai.ClientConfig, opts []GoogleOption) (*Google, error) {
	g := &Google{
		model:      GoogleTextMultilingualEmbedding002,
		dimensions: 768,
		maxBatch:   96, // matches the batcher's default chunk size
	}
	for _, opt := range opts {
		opt(g)
	}

	switch g.model {
	case GoogleTextEmbedding005, GoogleTextMultilingualEmbedding002:
	default:
		return nil, fmt.Errorf("%w: %s", ErrModelNotSupported, g.model)
	}
	if !slices.Contains(googleValidDims, g.dimensions) {
		return nil, fmt.Errorf("%w: %s supports 256, 768, 1536 or 3072, got %d",
			ErrInvalidDimensions, g.model, g.dimensions)
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create google ai client: %w", err)
	}
	g.client = client
	return g, nil
}

// Embed converts a single text to a vector.
func (g *Google) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := g.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch converts texts to vectors, preserving input order.
func (g *Google) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	if len(texts) > g.maxBatch {
		return nil, fmt.Errorf("%w: got %d texts, max is %d", ErrBatchTooLarge, len(texts), g.maxBatch)
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(text)},
		}
	}

	dims := int32(g.dimensions)
	resp, err := g.client.Models.EmbedContent(ctx, "models/"+g.model, contents, &genai.EmbedContentConfig{
		OutputDimensionality: &dims,
	})
	if err != nil {
		return nil, fmt.Errorf("google embeddings: %w", err)
	}
	if resp == nil || len(resp.Embeddings) == 0 {
		return nil, ErrNoEmbeddingReturned
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: sent %d, got %d", ErrEmbeddingCountMismatch, len(texts), len(resp.Embeddings))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("%w: index %d", ErrNoEmbeddingReturned, i)
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}

// Dimensions returns the configured vector size.
func (g *Google) Dimensions() int {
	return g.dimensions
}
