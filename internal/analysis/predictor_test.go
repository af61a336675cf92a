package analysis_test

import (
	"testing"

	"github.com/satpilot/backend/internal/analysis"
	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/quiz"
)

func TestPredict_Scales(t *testing.T) {
	quant := []quiz.PerformanceRecord{
		record(question.CategoryAlgebra, 5, 6),
		record(question.CategoryGeometry, 3, 4),
	} // 8/10
	verbal := []quiz.PerformanceRecord{
		record(question.CategoryReading, 6, 10),
	} // 6/10

	p := analysis.Predict(quant, verbal)

	if p.Quantitative != 640 {
		t.Errorf("expected quantitative 640, got %d", p.Quantitative)
	}
	if p.Verbal != 480 {
		t.Errorf("expected verbal 480, got %d", p.Verbal)
	}
	if p.Total != 1120 {
		t.Errorf("expected total 1120, got %d", p.Total)
	}
}

func TestPredict_EmptySectionScoresZero(t *testing.T) {
	p := analysis.Predict(nil, []quiz.PerformanceRecord{
		record(question.CategoryReading, 10, 10),
	})

	if p.Quantitative != 0 {
		t.Errorf("expected empty section score 0, got %d", p.Quantitative)
	}
	if p.Verbal != 800 {
		t.Errorf("expected verbal 800, got %d", p.Verbal)
	}
	if p.Total != 800 {
		t.Errorf("expected total 800, got %d", p.Total)
	}
}

func TestPredict_Rounds(t *testing.T) {
	p := analysis.Predict([]quiz.PerformanceRecord{
		record(question.CategoryAlgebra, 1, 3), // 266.66… → 267
	}, nil)

	if p.Quantitative != 267 {
		t.Errorf("expected rounded 267, got %d", p.Quantitative)
	}
}
