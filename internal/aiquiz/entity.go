package aiquiz

// QuizRequest fields are pointers so that a missing or null field is rejected
// while an empty string is accepted.
type QuizRequest struct {
	Topic      *string `json:"topic" validate:"required"`
	Difficulty *string `json:"difficulty" validate:"required"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}
