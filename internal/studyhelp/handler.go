package studyhelp

import (
	"net/http"

	"github.com/mitumoni-k/HackVita3.0/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Help returns the handler for one free-text route. The summary, study-help
// and tutor routes only differ in kind.
func (h *Handler) Help(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context()).WithField("kind", kind)

		var req StudyHelpRequest
		if err := config.DecodeJSON(r, &req); err != nil {
			log.WithError(err).Warn("rejected help request")
			config.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		help, err := h.service.Help(r.Context(), kind, deref(req.Message))
		if err != nil {
			log.WithError(err).Error("failed to generate help")
			config.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		config.JSON(w, http.StatusOK, TextHelpResponse{Help: help})
	}
}

// SummaryInsights godoc
// @Summary      Summarize strengths and weaknesses from quiz performance
// @Tags         study
// @Accept       json
// @Produce      json
// @Param        request  body      StudyHelpRequest  true  "Description of the quiz performance"
// @Success      200      {object}  TextHelpResponse
// @Failure      422      {object}  config.ErrorResponse
// @Failure      500      {object}  config.ErrorResponse
// @Router       /summary-insights [post]
func (h *Handler) SummaryInsights(w http.ResponseWriter, r *http.Request) {
	h.Help(KindSummary)(w, r)
}

// StudyHelp godoc
// @Summary      Answer a study question
// @Tags         study
// @Accept       json
// @Produce      json
// @Param        request  body      StudyHelpRequest  true  "Study question"
// @Success      200      {object}  TextHelpResponse
// @Failure      422      {object}  config.ErrorResponse
// @Failure      500      {object}  config.ErrorResponse
// @Router       /study-help [post]
func (h *Handler) StudyHelp(w http.ResponseWriter, r *http.Request) {
	h.Help(KindStudyHelp)(w, r)
}

// AITutor godoc
// @Summary      Build a prioritized study plan
// @Tags         study
// @Accept       json
// @Produce      json
// @Param        request  body      StudyHelpRequest  true  "Learning goals and performance"
// @Success      200      {object}  TextHelpResponse
// @Failure      422      {object}  config.ErrorResponse
// @Failure      500      {object}  config.ErrorResponse
// @Router       /ai-tutor [post]
func (h *Handler) AITutor(w http.ResponseWriter, r *http.Request) {
	h.Help(KindTutor)(w, r)
}

// Explain godoc
// @Summary      Explain a quiz answer
// @Tags         study
// @Accept       json
// @Produce      json
// @Param        request  body      ExplanationRequest  true  "Question and the given answer"
// @Success      200      {object}  TextHelpResponse
// @Failure      422      {object}  config.ErrorResponse
// @Failure      500      {object}  config.ErrorResponse
// @Router       /explain-answer [post]
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ExplanationRequest
	if err := config.DecodeJSON(r, &req); err != nil {
		log.WithError(err).Warn("rejected explanation request")
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	help, err := h.service.Explain(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("failed to generate explanation")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, TextHelpResponse{Help: help})
}
