package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitumoni-k/HackVita3.0/internal/llm"
)

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	p, err := llm.NewGeminiProvider(context.Background(), "", "gemini-1.5-flash")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestUpstreamErrorKeepsProviderMessage(t *testing.T) {
	cause := errors.New("rpc error: code = ResourceExhausted desc = quota exceeded")
	err := error(&llm.UpstreamError{Err: cause})

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)

	var upstream *llm.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Same(t, cause, upstream.Err)
}
