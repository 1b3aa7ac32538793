package studyhelp

import "fmt"

const (
	summaryTemplate = `You are a focused quiz evaluator. A student has completed a quiz, and you are here to provide a concise summary. ` +
		`Based on the student's performance on the following topics: "%s", ` +
		`briefly identify their strong and weak areas. Suggest quick and actionable steps for improvement. ` +
		`Keep your response short, clear, and helpful. Respond in plain text with no markdown.`

	studyHelpTemplate = `You are a helpful study guide. A student asks: "%s". ` +
		`Provide a concise, clear, and actionable answer for learning or revising the topic. ` +
		`Respond in plain text with no markdown.`

	tutorTemplate = `You are an AI tutor helping a student achieve their learning goals. ` +
		`Based on the student's input: "%s", ` +
		`analyze their strengths, weaknesses, and planned actions. ` +
		`Provide a clear, concise study plan with prioritized topics, effective study techniques, and actionable steps to address weaknesses. ` +
		`Keep the response brief and straightforward in plain text. ` +
		`Respond in plain text with no markdown.`

	explanationTemplate = `You are a patient teacher reviewing a quiz answer. ` +
		`Question: "%s". The student's answer: "%s". ` +
		`Say whether the answer is correct, then explain the reasoning behind the correct answer in a few sentences. ` +
		`Respond in plain text with no markdown.`
)

var messageTemplates = map[Kind]string{
	KindSummary:   summaryTemplate,
	KindStudyHelp: studyHelpTemplate,
	KindTutor:     tutorTemplate,
}

// BuildPrompt embeds message verbatim into the template for kind. It reports
// false for kinds that do not take a single message.
func BuildPrompt(kind Kind, message string) (string, bool) {
	tmpl, ok := messageTemplates[kind]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(tmpl, message), true
}

func BuildExplanationPrompt(req ExplanationRequest) string {
	return fmt.Sprintf(explanationTemplate, deref(req.Question), deref(req.Answer))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
