package quiz

import (
	"time"

	"github.com/satpilot/backend/internal/domain/question"
)

// SessionResult is the immutable snapshot produced when a session ends.
type SessionResult struct {
	Correct           int
	Incorrect         int
	Skipped           int
	TotalQuestions    int
	TotalSeconds      float64
	QuestionSeconds   []float64
	Category          question.Category
	Difficulty        question.Difficulty
	MissedQuestionIDs []string // incorrectly answered questions
	CompletedAt       time.Time
	Abandoned         bool
}

// SuccessRate is the fraction of questions answered correctly, in [0,1].
func (r SessionResult) SuccessRate() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.TotalQuestions)
}

// PerformanceRecord is one SessionResult tagged with category and difficulty,
// the unit of input to the performance analyzer. Records accumulate across
// sessions and are owned by the caller, not by the engine.
type PerformanceRecord struct {
	ID         string
	Result     SessionResult
	RecordedAt time.Time
}
