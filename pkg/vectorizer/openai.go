package vectorizer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI embedding models.
const (
	OpenAITextEmbedding3Small = "text-embedding-3-small"
	OpenAITextEmbedding3Large = "text-embedding-3-large"
)

// openAIMaxBatch is the API's hard per-request input limit.
const openAIMaxBatch = 2048

// OpenAI implements Vectorizer over the OpenAI embeddings API.
type OpenAI struct {
	client     openai.Client
	model      string
	dimensions int
	maxBatch   int
}

// OpenAIOption configures an OpenAI vectorizer.
type OpenAIOption func(*OpenAI)

// WithOpenAIModel selects the embedding model.
func WithOpenAIModel(model string) OpenAIOption {
	return func(o *OpenAI) { o.model = model }
}

// WithOpenAIDimensions sets the output vector size. Each model supports
// a fixed set of sizes; the constructor validates the combination.
func WithOpenAIDimensions(dims int) OpenAIOption {
	return func(o *OpenAI) { o.dimensions = dims }
}

// WithOpenAIMaxBatchSize caps how many texts go per API call.
func WithOpenAIMaxBatchSize(size int) OpenAIOption {
	return func(o *OpenAI) {
		if size > 0 && size <= openAIMaxBatch {
			o.maxBatch = size
		}
	}
}

// WithOpenAIHTTPClient sets a custom HTTP client, for proxies or
// instrumented transports.
func WithOpenAIHTTPClient(client *http.Client) OpenAIOption {
	return func(o *OpenAI) {
		if client != nil {
			o.client = openai.NewClient(option.WithHTTPClient(client))
		}
	}
}

// NewOpenAI creates an OpenAI vectorizer. Defaults to
// text-embedding-3-small at 1536 dimensions, which is plenty for device
// payloads and keeps the index small.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	o := &OpenAI{
		client:   openai.NewClient(option.WithAPIKey(apiKey)),
		model:    OpenAITextEmbedding3Small,
		maxBatch: 96, // matches the batcher's default chunk size
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.dimensions == 0 {
		switch o.model {
		case OpenAITextEmbedding3Small:
			o.dimensions = 1536
		case OpenAITextEmbedding3Large:
			o.dimensions = 3072
		default:
			return nil, fmt.Errorf("%w: %s", ErrModelNotSupported, o.model)
		}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *OpenAI) validate() error {
	switch o.model {
	case OpenAITextEmbedding3Small:
		if o.dimensions != 512 && o.dimensions != 1536 {
			return fmt.Errorf("%w: %s supports 512 or 1536, got %d",
				ErrInvalidDimensions, o.model, o.dimensions)
		}
	case OpenAITextEmbedding3Large:
		if o.dimensions != 256 && o.dimensions != 1024 && o.dimensions != 3072 {
			return fmt.Errorf("%w: %s supports 256, 1024 or 3072, got %d",
				ErrInvalidDimensions, o.model, o.dimensions)
		}
	default:
		return fmt.Errorf("%w: %s", ErrModelNotSupported, o.model)
	}
	return nil
}

// Embed converts a single text to a vector.
func (o *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := o.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch converts texts to vectors, preserving input order.
func (o *OpenAI) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	if len(texts) > o.maxBatch {
		return nil, fmt.Errorf("%w: got %d texts, max is %d", ErrBatchTooLarge, len(texts), o.maxBatch)
	}

	resp, err := o.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(o.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Dimensions: openai.Int(int64(o.dimensions)),
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, ErrNoEmbeddingReturned
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: sent %d, got %d", ErrEmbeddingCountMismatch, len(texts), len(resp.Data))
	}

	// The API returns float64; the index stores float32.
	vectors := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		vec := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// Dimensions returns the configured vector size.
func (o *OpenAI) Dimensions() int {
	return o.dimensions
}
