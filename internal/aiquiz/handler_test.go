package aiquiz_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mitumoni-k/HackVita3.0/internal/aiquiz"
	"github.com/mitumoni-k/HackVita3.0/internal/llm"
	"github.com/mitumoni-k/HackVita3.0/internal/llm/mocks"
)

func setupQuizRouter(provider llm.Provider) http.Handler {
	return setupQuizRouterWith(provider, aiquiz.Options{StrictSchema: true, QuestionCount: 10})
}

func setupQuizRouterWith(provider llm.Provider, opts aiquiz.Options) http.Handler {
	c := aiquiz.NewAIQuizContainer(provider, opts)
	r := chi.NewRouter()
	aiquiz.Routes(r, c.Handler)
	return r
}

func postQuiz(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate-quiz", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateQuizHandler(t *testing.T) {
	t.Run("WellFormedQuiz", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		stub := sampleQuizJSON(t, 10)
		provider.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "Algebra") && strings.Contains(p, "easy")
		})).Return(stub, nil).Once()

		rec := postQuiz(setupQuizRouter(provider), `{"topic":"Algebra","difficulty":"easy"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, stub, rec.Body.String())
		provider.AssertNumberOfCalls(t, "Generate", 1)
	})

	t.Run("FencedQuiz", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		stub := sampleQuizJSON(t, 10)
		provider.On("Generate", mock.Anything, mock.Anything).Return("```json\n"+stub+"\n```", nil).Once()

		rec := postQuiz(setupQuizRouter(provider), `{"topic":"Algebra","difficulty":"easy"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, stub, rec.Body.String())
	})

	t.Run("NonJSONPreamble", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		provider.On("Generate", mock.Anything, mock.Anything).
			Return("Sure! Here's your quiz: "+sampleQuizJSON(t, 10), nil).Once()

		rec := postQuiz(setupQuizRouter(provider), `{"topic":"Algebra","difficulty":"easy"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Invalid JSON format from AI response."}`, rec.Body.String())
	})

	t.Run("EmptyTopicReachesModel", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		stub := sampleQuizJSON(t, 10)
		provider.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "questions for  at easy difficulty")
		})).Return(stub, nil).Once()

		rec := postQuiz(setupQuizRouter(provider), `{"topic":"","difficulty":"easy"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, stub, rec.Body.String())
	})

	t.Run("NullField", func(t *testing.T) {
		provider := mocks.NewProvider(t)

		rec := postQuiz(setupQuizRouter(provider), `{"topic":null,"difficulty":"easy"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "topic")
		provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("MissingField", func(t *testing.T) {
		provider := mocks.NewProvider(t)

		rec := postQuiz(setupQuizRouter(provider), `{"topic":"Algebra"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "difficulty")
		provider.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("ProviderError", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		upstream := &llm.UpstreamError{Err: errors.New("dial tcp: connection refused")}
		provider.On("Generate", mock.Anything, mock.Anything).Return("", upstream).Once()

		rec := postQuiz(setupQuizRouter(provider), `{"topic":"Algebra","difficulty":"easy"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"dial tcp: connection refused"}`, rec.Body.String())
		provider.AssertNumberOfCalls(t, "Generate", 1)
	})
}

func TestGenerateQuizHandlerLenient(t *testing.T) {
	lenient := aiquiz.Options{StrictSchema: false, QuestionCount: 10}

	cases := []struct {
		name string
		stub string
	}{
		{name: "UnknownShape", stub: `{"items":[1]}`},
		{name: "ExtraKeys", stub: `{"title":"Algebra","questions":[]}`},
		{name: "WrongQuestionsType", stub: `{"questions":"1. What?"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := mocks.NewProvider(t)
			provider.On("Generate", mock.Anything, mock.Anything).Return("```json\n"+tc.stub+"\n```", nil).Once()

			rec := postQuiz(setupQuizRouterWith(provider, lenient), `{"topic":"Algebra","difficulty":"easy"}`)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tc.stub, rec.Body.String())
		})
	}

	t.Run("NotAnObject", func(t *testing.T) {
		provider := mocks.NewProvider(t)
		provider.On("Generate", mock.Anything, mock.Anything).Return(`[1,2,3]`, nil).Once()

		rec := postQuiz(setupQuizRouterWith(provider, lenient), `{"topic":"Algebra","difficulty":"easy"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Invalid JSON format from AI response."}`, rec.Body.String())
	})
}
