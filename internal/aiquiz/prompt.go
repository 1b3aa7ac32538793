package aiquiz

import "fmt"

const quizPromptTemplate = `Generate %d multiple-choice questions for %s at %s difficulty. ` +
	`Provide the response in raw JSON format (no markdown, no extra text) with the following structure:
{
  "questions": [
    {
      "id": "unique_question_id",
      "question": "The actual question text?",
      "options": ["option1", "option2", "option3", "option4"],
      "correctAnswer": "Correct option text",
      "explanation": "Brief explanation of the correct answer."
    },
    ... (repeat for %d questions) ...
  ]
}`

// BuildQuizPrompt embeds topic and difficulty verbatim.
func BuildQuizPrompt(req QuizRequest, count int) string {
	return fmt.Sprintf(quizPromptTemplate, count, deref(req.Topic), deref(req.Difficulty), count)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
