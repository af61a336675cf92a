package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/id"
)

// FallbackSource wraps a primary source with the template fallback: attempt
// remote, on any failure class return placeholder questions instead. The
// fallback itself cannot fail, so callers above this boundary never see a
// generation error.
type FallbackSource struct {
	primary Source // nil = always fall back
	logger  *slog.Logger
}

var _ Source = (*FallbackSource)(nil)

// NewFallbackSource wraps primary. A nil primary is allowed and yields
// template questions only.
func NewFallbackSource(primary Source, logger *slog.Logger) *FallbackSource {
	return &FallbackSource{primary: primary, logger: logger}
}

// Generate tries the primary source, then degrades to templates.
func (s *FallbackSource) Generate(ctx context.Context, cat question.Category, diff question.Difficulty, count int, hints []string) ([]question.Question, error) {
	if s.primary != nil {
		questions, err := s.primary.Generate(ctx, cat, diff, count, hints)
		if err == nil {
			return questions, nil
		}
		s.logger.Warn("remote question generation failed, using templates",
			"category", cat,
			"difficulty", diff,
			"error", err,
		)
	}
	return TemplateQuestions(cat, diff, count), nil
}

// templatePrompts holds one canned question per category. Placeholder
// content, clearly tagged as synthetic through the Generated flag and the
// "[practice]" prompt prefix.
var templatePrompts = map[question.Category]generatedQuestion{
	question.CategoryAlgebra: {
		Prompt:      "If 3x + 5 = 20, what is the value of x?",
		Options:     []string{"3", "5", "15", "25"},
		AnswerIndex: 1,
		Explanation: "Subtract 5 from both sides to get 3x = 15, so x = 5.",
	},
	question.CategoryGeometry: {
		Prompt:      "A rectangle has a length of 8 and a width of 3. What is its area?",
		Options:     []string{"11", "22", "24", "48"},
		AnswerIndex: 2,
		Explanation: "Area of a rectangle is length times width: 8 × 3 = 24.",
	},
	question.CategoryAdvancedMath: {
		Prompt:      "What are the roots of x² - 5x + 6 = 0?",
		Options:     []string{"2 and 3", "-2 and -3", "1 and 6", "-1 and -6"},
		AnswerIndex: 0,
		Explanation: "The quadratic factors as (x - 2)(x - 3) = 0.",
	},
	question.CategoryDataAnalysis: {
		Prompt:      "The mean of the numbers 4, 6, and 11 is:",
		Options:     []string{"6", "7", "8", "21"},
		AnswerIndex: 1,
		Explanation: "The mean is (4 + 6 + 11) / 3 = 7.",
	},
	question.CategoryReading: {
		Prompt:      "An author's tone is best described as the author's:",
		Options:     []string{"main argument", "attitude toward the subject", "choice of setting", "use of citations"},
		AnswerIndex: 1,
		Explanation: "Tone refers to the writer's attitude toward the subject matter.",
	},
	question.CategoryVocabulary: {
		Prompt:      "Which word is closest in meaning to \"candid\"?",
		Options:     []string{"secretive", "frank", "hostile", "uncertain"},
		AnswerIndex: 1,
		Explanation: "Candid means honest and direct, so frank is the closest synonym.",
	},
	question.CategoryGrammar: {
		Prompt:      "Choose the correct sentence.",
		Options:     []string{"Each of the players have a locker.", "Each of the players has a locker.", "Each of the players are having a locker.", "Each of the players were has a locker."},
		AnswerIndex: 1,
		Explanation: "\"Each\" is singular, so it takes the singular verb \"has\".",
	},
	question.CategoryWriting: {
		Prompt:      "Which transition best signals a contrast between two ideas?",
		Options:     []string{"Furthermore", "However", "Likewise", "Accordingly"},
		AnswerIndex: 1,
		Explanation: "\"However\" introduces an idea that contrasts with what came before.",
	},
}

// TemplateQuestions returns count placeholder questions for the category.
// The same template repeats under fresh IDs when count exceeds one; a short
// set of distinct items matters less than never returning an error here.
func TemplateQuestions(cat question.Category, diff question.Difficulty, count int) []question.Question {
	tmpl, ok := templatePrompts[cat]
	if !ok {
		tmpl = generatedQuestion{
			Prompt:      fmt.Sprintf("Which option best fits a %s practice question?", string(cat)),
			Options:     []string{"Option A", "Option B", "Option C", "Option D"},
			AnswerIndex: 0,
			Explanation: "Placeholder question generated while the question service was unavailable.",
		}
	}

	out := make([]question.Question, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, question.Question{
			ID:          id.GeneratedQuestionID(),
			Prompt:      "[practice] " + tmpl.Prompt,
			Options:     tmpl.Options,
			AnswerIndex: tmpl.AnswerIndex,
			Explanation: tmpl.Explanation,
			Category:    cat,
			Difficulty:  diff,
			CreatedAt:   time.Now(),
			Generated:   true,
		})
	}
	return out
}
