package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	// ErrInvalidAPIKey indicates a missing or empty API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrEmptyInput indicates there is nothing to summarize.
	ErrEmptyInput = errors.New("empty input text")

	// ErrNoCompletion indicates the API answered without any choices.
	ErrNoCompletion = errors.New("no completion returned")
)

const defaultPrompt = "You write short product blurbs for an electronics " +
	"catalog. Summarize the device specification below into two or three " +
	"selling sentences a shopper would actually read. Mention the device " +
	"name. Do not invent features that are not in the specification."

// OpenAI generates descriptions through the chat completions API.
type OpenAI struct {
	client      openai.Client
	model       string
	prompt      string
	temperature float64
	maxTokens   int64
}

// Option configures an OpenAI summarizer.
type Option func(*OpenAI)

// WithModel selects the chat model.
func WithModel(model string) Option {
	return func(s *OpenAI) {
		if model != "" {
			s.model = model
		}
	}
}

// WithPrompt replaces the default system prompt.
func WithPrompt(prompt string) Option {
	return func(s *OpenAI) {
		if prompt != "" {
			s.prompt = prompt
		}
	}
}

// WithTemperature sets sampling temperature; lower keeps descriptions
// closer to the source payload.
func WithTemperature(t float64) Option {
	return func(s *OpenAI) {
		if t >= 0 && t <= 2 {
			s.temperature = t
		}
	}
}

// WithMaxTokens caps the generated description length.
func WithMaxTokens(n int64) Option {
	return func(s *OpenAI) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// NewOpenAI creates a summarizer with sensible catalog defaults.
func NewOpenAI(apiKey string, opts ...Option) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	s := &OpenAI{
		client:      openai.NewClient(option.WithAPIKey(apiKey)),
		model:       openai.ChatModelGPT4oMini,
		prompt:      defaultPrompt,
		temperature: 0.7,
		maxTokens:   200,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Summarize turns one composed payload into a short description.
func (s *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(s.prompt),
			openai.UserMessage(text),
		},
		Temperature:         openai.Float(s.temperature),
		MaxCompletionTokens: openai.Int(s.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoCompletion
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", ErrNoCompletion
	}
	return summary, nil
}
