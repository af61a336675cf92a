package assembler

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/questionbank"
	"github.com/satpilot/backend/internal/domain/quiz"
	"github.com/satpilot/backend/internal/generator"
	"github.com/satpilot/backend/internal/trends"
	"github.com/satpilot/backend/internal/worker"
)

// defaultRotation is used for AI top-up when the caller requested no
// specific categories.
var defaultRotation = []question.Category{
	question.CategoryAlgebra,
	question.CategoryGeometry,
	question.CategoryReading,
	question.CategoryGrammar,
}

// generationWorkers bounds concurrent per-category generation calls.
const generationWorkers = 3

// Assembler produces the ordered question list for one quiz session:
// bank query, unbiased shuffle, optional AI top-up, truncation.
//
// Assembly never fails. Source failures are absorbed (the source itself
// degrades to templates) and a shorter-than-requested set is an acceptable
// outcome, not an error.
type Assembler struct {
	bank   *questionbank.Bank
	source generator.Source
	trends *trends.Client // optional
	logger *slog.Logger
}

// New creates an Assembler. trendsClient may be nil.
func New(bank *questionbank.Bank, source generator.Source, trendsClient *trends.Client, logger *slog.Logger) *Assembler {
	return &Assembler{
		bank:   bank,
		source: source,
		trends: trendsClient,
		logger: logger,
	}
}

// Assemble builds a deduplicated, randomized question list for the config.
// The remote generation call is the only suspension point; cancelling ctx
// discards augmentation and returns whatever the catalog supplied.
func (a *Assembler) Assemble(ctx context.Context, cfg quiz.Config) []question.Question {
	working := a.bank.FindByCriteria(questionbank.Criteria{
		Categories: cfg.Categories,
		Difficulty: cfg.Difficulty,
	})
	shuffle(working)

	if cfg.UseAI && len(working) < cfg.Count {
		working = a.augment(ctx, cfg, working)
		shuffle(working)
	}

	if len(working) > cfg.Count {
		working = working[:cfg.Count]
	}
	return working
}

// augment tops the working set up from the question source, one batch per
// requested category, and records the new questions in the bank's generated
// pool.
func (a *Assembler) augment(ctx context.Context, cfg quiz.Config, working []question.Question) []question.Question {
	categories := cfg.Categories
	if len(categories) == 0 {
		categories = defaultRotation
	}

	difficulty := cfg.Difficulty
	if difficulty == "" {
		difficulty = question.DifficultyMedium
	}

	deficit := cfg.Count - len(working)
	perCategory := (deficit + len(categories) - 1) / len(categories) // ceil

	pool := worker.NewPool[[]question.Question](generationWorkers, len(categories))
	for _, cat := range categories {
		cat := cat
		pool.Submit(string(cat), func() []question.Question {
			var hints []string
			if a.trends != nil {
				hints = a.trends.Hints(ctx, cat)
			}
			batch, err := a.source.Generate(ctx, cat, difficulty, perCategory, hints)
			if err != nil {
				// Degraded outcome: continue with what the other
				// categories produced.
				a.logger.Warn("question generation failed for category",
					"category", cat,
					"error", err,
				)
				return nil
			}
			return batch
		})
	}

	seen := make(map[string]struct{}, len(working))
	for _, q := range working {
		seen[q.ID] = struct{}{}
	}

	for range categories {
		result := <-pool.Results()
		if ctx.Err() != nil {
			continue // cancelled mid-assembly: drain but discard
		}
		a.bank.AddGenerated(result.Output)
		for _, q := range result.Output {
			if _, dup := seen[q.ID]; dup {
				continue
			}
			seen[q.ID] = struct{}{}
			working = append(working, q)
		}
	}
	pool.Close()

	return working
}

// shuffle randomizes in place with a uniform Fisher-Yates permutation.
func shuffle(questions []question.Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
