package studyhelp

import "github.com/go-chi/chi/v5"

func Routes(r chi.Router, h *Handler) {
	r.Post("/"+string(KindSummary), h.SummaryInsights)
	r.Post("/"+string(KindStudyHelp), h.StudyHelp)
	r.Post("/"+string(KindTutor), h.AITutor)
	r.Post("/"+string(KindExplanation), h.Explain)
}
