package aiquiz

import (
	"context"
	"encoding/json"

	"github.com/mitumoni-k/HackVita3.0/internal/config"
	"github.com/mitumoni-k/HackVita3.0/internal/llm"
)

type Service interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) (json.RawMessage, error)
}

type Options struct {
	StrictSchema  bool
	QuestionCount int
}

type service struct {
	provider llm.Provider
	opts     Options
}

func NewService(provider llm.Provider, opts Options) Service {
	if opts.QuestionCount <= 0 {
		opts.QuestionCount = config.DefaultQuizQuestionCount
	}
	return &service{provider: provider, opts: opts}
}

func (s *service) GenerateQuiz(ctx context.Context, req QuizRequest) (json.RawMessage, error) {
	log := config.WithContext(ctx).WithField("topic", deref(req.Topic))

	raw, err := s.provider.Generate(ctx, BuildQuizPrompt(req, s.opts.QuestionCount))
	if err != nil {
		return nil, err
	}

	clean := llm.Clean(raw)
	quiz, err := ParseQuiz(clean, s.opts.StrictSchema, s.opts.QuestionCount)
	if err != nil {
		log.WithError(err).Errorf("quiz response rejected, cleaned content:\n%s", clean)
		return nil, err
	}

	log.WithField("strict", s.opts.StrictSchema).Infof("generated quiz of %d bytes", len(quiz))
	return quiz, nil
}
