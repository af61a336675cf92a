package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/quiz"
)

// WeakThreshold is the success rate below which a category is flagged weak.
const WeakThreshold = 0.70

// StudyRecommendation suggests what to work on for one weak category.
// Derived on demand from performance records, never persisted.
type StudyRecommendation struct {
	Category             question.Category `json:"category"`
	Reason               string            `json:"reason"`
	Resources            []string          `json:"resources"`
	SuggestedQuestionIDs []string          `json:"suggested_question_ids"`
}

// Analyze computes the per-category success rate across all records: the
// MINIMUM observed rate, not the average, so one bad session keeps a category
// flagged even if an earlier session was strong. Records with zero questions
// are excluded. Empty input yields an empty map.
func Analyze(records []quiz.PerformanceRecord) map[question.Category]float64 {
	rates := make(map[question.Category]float64)
	for _, rec := range records {
		if rec.Result.TotalQuestions == 0 {
			continue
		}
		rate := rec.Result.SuccessRate()
		current, seen := rates[rec.Result.Category]
		if !seen || rate < current {
			rates[rec.Result.Category] = rate
		}
	}
	return rates
}

// Recommend turns category success rates into ranked study recommendations:
// one per category under the threshold, weakest first. Categories missing
// from the reference table get generically labeled placeholders.
func Recommend(rates map[question.Category]float64) []StudyRecommendation {
	type weak struct {
		category question.Category
		rate     float64
	}

	var weaks []weak
	for cat, rate := range rates {
		if rate < WeakThreshold {
			weaks = append(weaks, weak{category: cat, rate: rate})
		}
	}

	sort.Slice(weaks, func(i, j int) bool {
		if weaks[i].rate != weaks[j].rate {
			return weaks[i].rate < weaks[j].rate
		}
		return weaks[i].category < weaks[j].category // stable order for equal rates
	})

	recs := make([]StudyRecommendation, 0, len(weaks))
	for _, w := range weaks {
		pct := int(math.Round(w.rate * 100))
		ref, ok := referenceTable[w.category]
		if !ok {
			ref = genericReference(w.category)
		}
		recs = append(recs, StudyRecommendation{
			Category: w.category,
			Reason: fmt.Sprintf("Your success rate in %s is %d%%, below the %d%% target. Focused practice should come first.",
				displayName(w.category), pct, int(WeakThreshold*100)),
			Resources:            ref.Resources,
			SuggestedQuestionIDs: ref.QuestionIDs,
		})
	}
	return recs
}
