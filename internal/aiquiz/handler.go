package aiquiz

import (
	"errors"
	"net/http"

	"github.com/mitumoni-k/HackVita3.0/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz godoc
// @Summary      Generate a multiple-choice quiz
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request  body      QuizRequest  true  "Topic and difficulty"
// @Success      200      {object}  QuizResponse
// @Failure      422      {object}  config.ErrorResponse
// @Failure      500      {object}  config.ErrorResponse
// @Router       /generate-quiz [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		log.WithError(err).Warn("rejected quiz request")
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	quiz, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			config.Error(w, http.StatusInternalServerError, InvalidFormatDetail)
			return
		}
		log.WithError(err).Error("failed to generate quiz")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}
