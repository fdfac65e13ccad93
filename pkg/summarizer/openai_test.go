package summarizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicefinder/pkg/summarizer"
)

func TestNewOpenAIRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := summarizer.NewOpenAI("")
	assert.ErrorIs(t, err, summarizer.ErrInvalidAPIKey)
}

func TestSummarizeRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	s, err := summarizer.NewOpenAI("sk-test")
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "   \n ")
	assert.ErrorIs(t, err, summarizer.ErrEmptyInput)
}
