package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitumoni-k/HackVita3.0/internal/llm"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "PlainText", in: "  Study daily.  \n", want: "Study daily."},
		{name: "InlineFences", in: "```Study recursion via base cases.```", want: "Study recursion via base cases."},
		{name: "JSONFence", in: "```json\n{\"questions\":[]}\n```", want: `{"questions":[]}`},
		{name: "JSONFenceUppercase", in: "```JSON\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "JSONTagNoNewline", in: "```json{\"a\":1}```", want: `{"a":1}`},
		{name: "BareFence", in: "```\n[1,2]\n```", want: "[1,2]"},
		{name: "UnknownTagKept", in: "```Hello\nworld```", want: "Hello\nworld"},
		{name: "FenceInMiddle", in: "Answer:\n```\nx = 1\n```\nDone", want: "Answer:\n\nx = 1\n\nDone"},
		{name: "WordJSONPreserved", in: "Learn JSON syntax first.", want: "Learn JSON syntax first."},
		{name: "Empty", in: "   ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, llm.Clean(tc.in))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"questions\":[]}\n```",
		"```Study recursion via base cases.```",
		"````` odd backticks ``",
		"``````",
		"```json json {\"a\":1}```",
		"Sure! Here's your quiz: {}",
		"\n\t plain \n",
	}

	for _, in := range inputs {
		once := llm.Clean(in)
		assert.Equal(t, once, llm.Clean(once), "input %q", in)
	}
}
