package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitumoni-k/HackVita3.0/internal/config"
	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = errors.New("gemini api key is empty")
	ErrEmptyResponse = errors.New("empty response from model")
)

//go:generate mockery --name Provider --output mocks --outpkg mocks --filename provider.go

// Provider sends one prompt to a generative model and returns its raw text.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// UpstreamError carries a provider failure. Its message is the provider's own,
// so callers can surface it unchanged.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", p.model)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("gemini generate content failed")
		return "", &UpstreamError{Err: err}
	}

	raw := result.Text()
	log.Debugf("raw model response:\n%s", raw)

	if raw == "" {
		return "", &UpstreamError{Err: ErrEmptyResponse}
	}
	return raw, nil
}
