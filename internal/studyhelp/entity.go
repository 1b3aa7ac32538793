package studyhelp

// Kind selects the prompt template for a free-text help request.
type Kind string

const (
	KindSummary     Kind = "summary-insights"
	KindStudyHelp   Kind = "study-help"
	KindTutor       Kind = "ai-tutor"
	KindExplanation Kind = "explain-answer"
)

// Request fields are pointers: required rejects a missing or null field but
// lets an empty string through.
type StudyHelpRequest struct {
	Message *string `json:"message" validate:"required"`
}

type ExplanationRequest struct {
	Question *string `json:"question" validate:"required"`
	Answer   *string `json:"answer" validate:"required"`
}

type TextHelpResponse struct {
	Help string `json:"help"`
}
