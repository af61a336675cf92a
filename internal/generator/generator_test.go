package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/satpilot/backend/internal/domain/question"
)

func TestExtractJSONArray(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare array",
			input: `[{"a": 1}]`,
			want:  `[{"a": 1}]`,
		},
		{
			name:  "array inside prose",
			input: "Here you go:\n[{\"a\": 1}]\nHope that helps!",
			want:  `[{"a": 1}]`,
		},
		{
			name:  "brackets inside strings ignored",
			input: `[{"prompt": "solve [x]"}]`,
			want:  `[{"prompt": "solve [x]"}]`,
		},
		{
			name:  "no array",
			input: `{"a": 1}`,
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONArray(tc.input); got != tc.want {
				t.Errorf("extractJSONArray(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestLLMSource_ParsesWellFormedResponse(t *testing.T) {
	payload := `[
		{"prompt": "What is 2+2?", "options": ["3", "4", "5", "6"], "answer_index": 1, "explanation": "2+2 is 4."},
		{"prompt": "bad item", "options": ["only", "two"], "answer_index": 0, "explanation": "dropped"}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprintf(w, `{"choices": [{"message": {"content": %q}}]}`, payload)
	}))
	defer server.Close()

	src := NewLLMSource(server.URL, "test-model")
	questions, err := src.Generate(context.Background(), question.CategoryAlgebra, question.DifficultyEasy, 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(questions) != 1 {
		t.Fatalf("expected 1 usable question (malformed item dropped), got %d", len(questions))
	}
	q := questions[0]
	if !q.Generated {
		t.Error("expected generated provenance flag")
	}
	if q.Category != question.CategoryAlgebra || q.Difficulty != question.DifficultyEasy {
		t.Errorf("expected requested category/difficulty, got %s/%s", q.Category, q.Difficulty)
	}
	if q.AnswerIndex != 1 {
		t.Errorf("expected answer index 1, got %d", q.AnswerIndex)
	}
	if !strings.HasPrefix(q.ID, "gen-") {
		t.Errorf("expected generated ID scheme, got %q", q.ID)
	}
}

func TestLLMSource_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := NewLLMSource(server.URL, "test-model")
	_, err := src.Generate(context.Background(), question.CategoryAlgebra, question.DifficultyEasy, 2, nil)

	var genErr *GenerateError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerateError, got %v", err)
	}
}

func TestFallbackSource_DegradesToTemplates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	src := NewFallbackSource(NewLLMSource(server.URL, "test-model"), logger)

	questions, err := src.Generate(context.Background(), question.CategoryGeometry, question.DifficultyHard, 3, nil)
	if err != nil {
		t.Fatalf("fallback must not fail, got %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 template questions, got %d", len(questions))
	}
	for _, q := range questions {
		if !q.Generated {
			t.Error("expected synthetic questions to be tagged generated")
		}
		if err := q.Validate(); err != nil {
			t.Errorf("template question invalid: %v", err)
		}
		if q.Difficulty != question.DifficultyHard {
			t.Errorf("expected requested difficulty, got %s", q.Difficulty)
		}
	}
}

func TestTemplateQuestions_UniqueIDs(t *testing.T) {
	questions := TemplateQuestions(question.CategoryVocabulary, question.DifficultyMedium, 4)

	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.ID] {
			t.Errorf("duplicate generated ID %s", q.ID)
		}
		seen[q.ID] = true
	}
}
