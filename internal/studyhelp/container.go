package studyhelp

import "github.com/mitumoni-k/HackVita3.0/internal/llm"

type StudyHelpContainer struct {
	Handler *Handler
}

func NewStudyHelpContainer(provider llm.Provider) *StudyHelpContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &StudyHelpContainer{
		Handler: handler,
	}
}
