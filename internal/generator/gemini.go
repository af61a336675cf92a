package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/satpilot/backend/internal/domain/question"
)

// GeminiSource generates questions through the Gemini API. It is an
// alternative to LLMSource for deployments without a local model.
type GeminiSource struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

var _ Source = (*GeminiSource)(nil)

// NewGeminiSource creates a Gemini-backed source.
func NewGeminiSource(ctx context.Context, apiKey, modelName string) (*GeminiSource, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)

	return &GeminiSource{client: client, model: model}, nil
}

// Close releases the underlying client.
func (s *GeminiSource) Close() {
	s.client.Close()
}

// Generate asks Gemini for count questions and parses the response the same
// way LLMSource does.
func (s *GeminiSource) Generate(ctx context.Context, cat question.Category, diff question.Difficulty, count int, hints []string) ([]question.Question, error) {
	prompt := buildQuestionPrompt(cat, diff, count, hints)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &GenerateError{Reason: "Gemini API error", Wrapped: err}
	}

	raw := extractText(resp)
	if raw == "" {
		return nil, &GenerateError{Reason: "Gemini returned no text"}
	}

	jsonStr := extractJSONArray(raw)
	if jsonStr == "" {
		return nil, &GenerateError{Reason: "no JSON array found in Gemini response"}
	}

	var items []generatedQuestion
	if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		return nil, &GenerateError{Reason: "invalid JSON from Gemini", Wrapped: err}
	}

	questions := convertGenerated(items, cat, diff, count)
	if len(questions) == 0 {
		return nil, &GenerateError{Reason: "Gemini returned no usable questions"}
	}
	return questions, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out
}
