package question

import (
	"errors"
	"time"
)

// Category is one of the fixed SAT subject tags.
type Category string

const (
	CategoryAlgebra       Category = "algebra"
	CategoryGeometry      Category = "geometry"
	CategoryAdvancedMath  Category = "advanced_math"
	CategoryDataAnalysis  Category = "data_analysis"
	CategoryReading       Category = "reading_comprehension"
	CategoryVocabulary    Category = "vocabulary"
	CategoryGrammar       Category = "grammar"
	CategoryWriting       Category = "writing"

	// CategoryMixed tags session results that span multiple subject tags.
	// It is not a valid catalog category.
	CategoryMixed Category = "mixed"
)

// Categories lists every valid catalog category.
var Categories = []Category{
	CategoryAlgebra,
	CategoryGeometry,
	CategoryAdvancedMath,
	CategoryDataAnalysis,
	CategoryReading,
	CategoryVocabulary,
	CategoryGrammar,
	CategoryWriting,
}

// Valid reports whether c is one of the catalog categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Section is one of the two broad SAT sections used for score prediction.
type Section string

const (
	SectionQuantitative Section = "quantitative"
	SectionVerbal       Section = "verbal"
	SectionNone         Section = ""
)

// Section maps a category onto its broad SAT section.
func (c Category) Section() Section {
	switch c {
	case CategoryAlgebra, CategoryGeometry, CategoryAdvancedMath, CategoryDataAnalysis:
		return SectionQuantitative
	case CategoryReading, CategoryVocabulary, CategoryGrammar, CategoryWriting:
		return SectionVerbal
	default:
		return SectionNone
	}
}

// Difficulty is one of easy, medium, hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is a single multiple-choice item. Immutable once created.
type Question struct {
	ID          string
	Prompt      string
	Options     []string
	AnswerIndex int
	Explanation string
	Category    Category
	Difficulty  Difficulty
	CreatedAt   time.Time
	Generated   bool   // dynamically generated vs. catalog
	SourceURL   string // optional citation
	PassageID   string // optional reading passage reference
}

var (
	errEmptyPrompt      = errors.New("question prompt cannot be empty")
	errTooFewOptions    = errors.New("question needs at least two options")
	errAnswerOutOfRange = errors.New("correct answer index out of range")
)

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return errEmptyPrompt
	}
	if len(q.Options) < 2 {
		return errTooFewOptions
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return errAnswerOutOfRange
	}
	return nil
}

// Passage is a reading passage shared by one or more questions.
// Loaded once from the catalog, never mutated.
type Passage struct {
	ID          string
	Title       string
	Body        string
	SourceURL   string
	QuestionIDs []string
}
