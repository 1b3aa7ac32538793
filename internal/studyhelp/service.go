package studyhelp

import (
	"context"
	"fmt"

	"github.com/mitumoni-k/HackVita3.0/internal/config"
	"github.com/mitumoni-k/HackVita3.0/internal/llm"
)

type Service interface {
	Help(ctx context.Context, kind Kind, message string) (string, error)
	Explain(ctx context.Context, req ExplanationRequest) (string, error)
}

type service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

func (s *service) Help(ctx context.Context, kind Kind, message string) (string, error) {
	prompt, ok := BuildPrompt(kind, message)
	if !ok {
		return "", fmt.Errorf("unknown help kind %q", kind)
	}
	return s.generate(ctx, kind, prompt)
}

func (s *service) Explain(ctx context.Context, req ExplanationRequest) (string, error) {
	return s.generate(ctx, KindExplanation, BuildExplanationPrompt(req))
}

func (s *service) generate(ctx context.Context, kind Kind, prompt string) (string, error) {
	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	help := llm.Clean(raw)
	config.WithContext(ctx).WithField("kind", kind).Infof("generated %d characters of help", len(help))
	return help, nil
}
