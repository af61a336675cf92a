// Offline walkthrough of the full practice flow against the built-in
// catalog: assemble sessions, answer every question, then print the
// results, study recommendations, and the score prediction.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/satpilot/backend/internal/analysis"
	"github.com/satpilot/backend/internal/assembler"
	"github.com/satpilot/backend/internal/catalog"
	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/questionbank"
	"github.com/satpilot/backend/internal/domain/quiz"
	"github.com/satpilot/backend/internal/generator"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cat := catalog.Builtin()
	bank := questionbank.New(cat.Questions, cat.Passages)

	// Template-only source: no network, still tops up short sessions.
	source := generator.NewFallbackSource(nil, logger)
	asm := assembler.New(bank, source, nil, logger)

	configs := []quiz.Config{
		{Categories: []question.Category{question.CategoryAlgebra}, Count: 6, UseAI: true},
		{Categories: []question.Category{question.CategoryVocabulary}, Count: 6, UseAI: true},
	}

	var records []quiz.PerformanceRecord
	for i, cfg := range configs {
		result := runSession(asm, cfg, logger)
		records = append(records, quiz.PerformanceRecord{
			ID:     fmt.Sprintf("simulated-%d", i+1),
			Result: *result,
		})
	}

	rates := analysis.Analyze(records)
	fmt.Printf("\n=== Success rates ===\n")
	for c, rate := range rates {
		fmt.Printf("%-22s %.0f%%\n", c, rate*100)
	}

	fmt.Printf("\n=== Recommendations ===\n")
	recs := analysis.Recommend(rates)
	if len(recs) == 0 {
		fmt.Println("none, keep practicing")
	}
	for _, rec := range recs {
		fmt.Printf("- %s: %s\n", rec.Category, rec.Reason)
	}

	var quant, verbal []quiz.PerformanceRecord
	for _, rec := range records {
		switch rec.Result.Category.Section() {
		case question.SectionQuantitative:
			quant = append(quant, rec)
		case question.SectionVerbal:
			verbal = append(verbal, rec)
		}
	}
	prediction := analysis.Predict(quant, verbal)
	fmt.Printf("\n=== Predicted score ===\n")
	fmt.Printf("Quantitative: %d\nVerbal: %d\nTotal: %d\n",
		prediction.Quantitative, prediction.Verbal, prediction.Total)
}

func runSession(asm *assembler.Assembler, cfg quiz.Config, logger *slog.Logger) *quiz.SessionResult {
	questions := asm.Assemble(context.Background(), cfg)

	runner, err := quiz.Start(questions, cfg.ResultCategory(), cfg.Difficulty)
	if err != nil {
		logger.Error("failed to start session", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\nSession %s: %d questions\n", cfg.ResultCategory(), len(questions))

	for {
		q, err := runner.CurrentQuestion()
		if err != nil {
			logger.Error("current question", "error", err)
			os.Exit(1)
		}

		// Answer at random, skipping every fifth question.
		index, total := runner.Progress()
		if index%5 == 4 {
			runner.Skip()
			fmt.Printf("[%d/%d] %s skipped\n", index+1, total, q.ID)
		} else {
			choice := rand.Intn(len(q.Options))
			runner.SelectAnswer(choice)
			feedback, err := runner.SubmitAnswer()
			if err != nil {
				logger.Error("submit", "error", err)
				os.Exit(1)
			}
			verdict := "wrong"
			if feedback.Correct {
				verdict = "correct"
			}
			fmt.Printf("[%d/%d] %s chose %d, %s\n", index+1, total, q.ID, choice, verdict)
		}

		done, err := runner.Advance()
		if err != nil {
			logger.Error("advance", "error", err)
			os.Exit(1)
		}
		if done {
			break
		}
	}

	result, err := runner.Result()
	if err != nil {
		logger.Error("result", "error", err)
		os.Exit(1)
	}

	fmt.Printf("correct %d, incorrect %d, skipped %d, rate %.0f%%\n",
		result.Correct, result.Incorrect, result.Skipped, result.SuccessRate()*100)
	return result
}
