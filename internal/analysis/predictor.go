package analysis

import (
	"math"

	"github.com/satpilot/backend/internal/domain/quiz"
)

// scaleMax is the maximum score per SAT section.
const scaleMax = 800

// ScorePrediction maps aggregated performance onto the SAT point scale.
// Recomputed on demand.
type ScorePrediction struct {
	Quantitative int `json:"quantitative"`
	Verbal       int `json:"verbal"`
	Total        int `json:"total"`
}

// Predict aggregates correct/total across each record group and projects
// them onto the section scale. A section with no questions scores 0 rather
// than dividing by zero.
func Predict(quantitative, verbal []quiz.PerformanceRecord) ScorePrediction {
	p := ScorePrediction{
		Quantitative: sectionScore(quantitative),
		Verbal:       sectionScore(verbal),
	}
	p.Total = p.Quantitative + p.Verbal
	return p
}

func sectionScore(records []quiz.PerformanceRecord) int {
	var correct, total int
	for _, rec := range records {
		correct += rec.Result.Correct
		total += rec.Result.TotalQuestions
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * scaleMax))
}
