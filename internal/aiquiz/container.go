package aiquiz

import "github.com/mitumoni-k/HackVita3.0/internal/llm"

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(provider llm.Provider, opts Options) *AIQuizContainer {
	service := NewService(provider, opts)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}
}
