package container

import (
	"context"

	"github.com/mitumoni-k/HackVita3.0/internal/aiquiz"
	"github.com/mitumoni-k/HackVita3.0/internal/config"
	"github.com/mitumoni-k/HackVita3.0/internal/llm"
	"github.com/mitumoni-k/HackVita3.0/internal/router"
	"github.com/mitumoni-k/HackVita3.0/internal/studyhelp"
)

type Container struct {
	AIQuizContainer    *aiquiz.AIQuizContainer
	StudyHelpContainer *studyhelp.StudyHelpContainer
}

// New builds every feature on top of a single Gemini client.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	provider, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	return NewWithProvider(provider, cfg), nil
}

func NewWithProvider(provider llm.Provider, cfg *config.Config) *Container {
	return &Container{
		AIQuizContainer: aiquiz.NewAIQuizContainer(provider, aiquiz.Options{
			StrictSchema:  cfg.QuizStrictSchema,
			QuestionCount: cfg.QuizQuestionCount,
		}),
		StudyHelpContainer: studyhelp.NewStudyHelpContainer(provider),
	}
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		AIQuizHandler:    c.AIQuizContainer.Handler,
		StudyHelpHandler: c.StudyHelpContainer.Handler,
	}
}
