package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidFormat = errors.New("invalid JSON format from AI response")

// InvalidFormatDetail is the fixed message clients get for ErrInvalidFormat.
const InvalidFormatDetail = "Invalid JSON format from AI response."

const optionsPerQuestion = 4

func quizSchema(count int) map[string]any {
	str := map[string]any{"type": "string"}
	return map[string]any{
		"type":     "object",
		"required": []any{"questions"},
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": count,
				"maxItems": count,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "question", "options", "correctAnswer", "explanation"},
					"properties": map[string]any{
						"id":       str,
						"question": str,
						"options": map[string]any{
							"type":     "array",
							"minItems": optionsPerQuestion,
							"maxItems": optionsPerQuestion,
							"items":    str,
						},
						"correctAnswer": str,
						"explanation":   str,
					},
				},
			},
		},
	}
}

// ParseQuiz checks cleaned model output and returns it unchanged. The output
// must be a JSON object. With strict set, it must also match the quiz schema
// for count questions and every correctAnswer must be one of its options.
// All failures wrap ErrInvalidFormat.
func ParseQuiz(clean string, strict bool, count int) (json.RawMessage, error) {
	if !json.Valid([]byte(clean)) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidFormat)
	}
	if !strings.HasPrefix(clean, "{") {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrInvalidFormat)
	}
	if !strict {
		return json.RawMessage(clean), nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(quizSchema(count)),
		gojsonschema.NewStringLoader(clean),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, strings.Join(msgs, "; "))
	}

	var quiz QuizResponse
	if err := json.Unmarshal([]byte(clean), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	for i, q := range quiz.Questions {
		if !slices.Contains(q.Options, q.CorrectAnswer) {
			return nil, fmt.Errorf("%w: question %d correctAnswer is not one of its options", ErrInvalidFormat, i+1)
		}
	}

	return json.RawMessage(clean), nil
}
