package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/id"
)

// LLMSource generates questions by calling an OpenAI-compatible chat
// completions endpoint (Ollama, LM Studio, vLLM, etc.).
type LLMSource struct {
	url    string       // e.g. "http://localhost:1234"
	model  string       // e.g. "qwen3-8b"
	client *http.Client // reused across calls
}

// Compile-time check: *LLMSource satisfies the Source interface.
var _ Source = (*LLMSource)(nil)

// NewLLMSource creates a source that calls the given LLM endpoint.
func NewLLMSource(url, model string) *LLMSource {
	return &LLMSource{
		url:   url,
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

const maxRetries = 2

// generatedQuestion is the shape each item of the model's JSON array must
// have. Anything else is a parse failure.
type generatedQuestion struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation"`
}

// Generate asks the model for count questions and parses the response.
// It retries once on parse failure (small models sometimes need a second try).
func (s *LLMSource) Generate(ctx context.Context, cat question.Category, diff question.Difficulty, count int, hints []string) ([]question.Question, error) {
	prompt := buildQuestionPrompt(cat, diff, count, hints)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := s.callLLM(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		jsonStr := extractJSONArray(raw)
		if jsonStr == "" {
			lastErr = &GenerateError{Reason: "no JSON array found in LLM response"}
			continue
		}

		var items []generatedQuestion
		if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
			lastErr = &GenerateError{Reason: "invalid JSON from LLM", Wrapped: err}
			continue
		}

		questions := convertGenerated(items, cat, diff, count)
		if len(questions) == 0 {
			lastErr = &GenerateError{Reason: "LLM returned no usable questions"}
			continue
		}
		return questions, nil
	}

	return nil, &GenerateError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// convertGenerated validates each item and converts the usable ones.
// Malformed items are dropped, not fatal: a partial batch still helps.
func convertGenerated(items []generatedQuestion, cat question.Category, diff question.Difficulty, count int) []question.Question {
	var out []question.Question
	for _, item := range items {
		if len(out) == count {
			break
		}
		q := question.Question{
			ID:          id.GeneratedQuestionID(),
			Prompt:      strings.TrimSpace(item.Prompt),
			Options:     item.Options,
			AnswerIndex: item.AnswerIndex,
			Explanation: strings.TrimSpace(item.Explanation),
			Category:    cat,
			Difficulty:  diff,
			CreatedAt:   time.Now(),
			Generated:   true,
		}
		if len(q.Options) != 4 {
			continue
		}
		if err := q.Validate(); err != nil {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (s *LLMSource) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: s.model,
		Messages: []llmMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSONArray finds the outermost JSON array in a string. It handles
// nested brackets correctly and skips brackets inside quoted strings.
func extractJSONArray(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '[' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == ']' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ============================================================================
// Prompt builder — kept short and directive for small (4-8B) models.
// The JSON schema comes last so it's the freshest thing the model sees.
// ============================================================================

func buildQuestionPrompt(cat question.Category, diff question.Difficulty, count int, hints []string) string {
	trendBlock := ""
	if len(hints) > 0 {
		trendBlock = "Where natural, anchor questions in these current topics:\n- " +
			strings.Join(hints, "\n- ") + "\n\n"
	}

	return fmt.Sprintf(`/no_think
You are writing SAT practice questions.

Write %d multiple-choice questions for the SAT subject area %q at %s difficulty.

RULES:
- Exactly 4 answer options per question.
- Exactly one correct option; "answer_index" is its zero-based position.
- The explanation must say why the correct option is right in one or two sentences.
- Questions must be self-contained: no references to figures or passages.

%sRespond with ONLY this JSON — no explanation, no markdown:
[{"prompt": "...", "options": ["...", "...", "...", "..."], "answer_index": 0, "explanation": "..."}]`,
		count, string(cat), string(diff), trendBlock)
}
