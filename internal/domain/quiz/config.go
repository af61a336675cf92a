package quiz

import "github.com/satpilot/backend/internal/domain/question"

// Config describes one requested quiz session. Supplied by the caller and
// immutable for the lifetime of the session.
type Config struct {
	Categories []question.Category // empty = any category
	Difficulty question.Difficulty // "" = any difficulty
	Count      int                 // requested question count, > 0
	UseAI      bool                // top up from the question source when the catalog is short
}

// ResultCategory is the category a session's result is tagged with: the
// single requested category, or Mixed when the session spans several.
func (c Config) ResultCategory() question.Category {
	if len(c.Categories) == 1 {
		return c.Categories[0]
	}
	return question.CategoryMixed
}
