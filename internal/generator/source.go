package generator

import (
	"context"
	"fmt"

	"github.com/satpilot/backend/internal/domain/question"
)

// Source generates new questions for a category and difficulty.
// Implementations may call an LLM or return canned results (for tests).
type Source interface {
	// Generate returns up to count new multiple-choice questions. The trend
	// hints are short free-text strings that steer the question content
	// toward current topics; implementations may ignore them.
	Generate(ctx context.Context, cat question.Category, diff question.Difficulty, count int, hints []string) ([]question.Question, error)
}

// GenerateError is returned when remote generation fails so the caller can
// distinguish between "the model returned junk" and "the model was
// unreachable."
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("question generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("question generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}
