package assembler_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/satpilot/backend/internal/assembler"
	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/questionbank"
	"github.com/satpilot/backend/internal/domain/quiz"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func catalogQuestion(id string, cat question.Category, diff question.Difficulty) question.Question {
	return question.Question{
		ID:          id,
		Prompt:      "Prompt " + id,
		Options:     []string{"A", "B", "C", "D"},
		AnswerIndex: 0,
		Category:    cat,
		Difficulty:  diff,
	}
}

// stubSource returns a fixed number of questions per call, or an error.
type stubSource struct {
	perCall int
	fail    bool
	calls   int
}

func (s *stubSource) Generate(ctx context.Context, cat question.Category, diff question.Difficulty, count int, hints []string) ([]question.Question, error) {
	s.calls++
	if s.fail {
		return nil, errors.New("source down")
	}
	n := s.perCall
	if n > count {
		n = count
	}
	out := make([]question.Question, n)
	for i := range out {
		q := catalogQuestion(fmt.Sprintf("gen-%s-%d-%d", cat, s.calls, i), cat, diff)
		q.Generated = true
		out[i] = q
	}
	return out, nil
}

func seededBank(n int, cat question.Category, diff question.Difficulty) *questionbank.Bank {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = catalogQuestion(fmt.Sprintf("cat-%d", i), cat, diff)
	}
	return questionbank.New(qs, nil)
}

func TestAssemble_TruncatesToCount(t *testing.T) {
	bank := seededBank(30, question.CategoryAlgebra, question.DifficultyMedium)
	a := assembler.New(bank, &stubSource{}, nil, testLogger())

	got := a.Assemble(context.Background(), quiz.Config{Count: 10})

	if len(got) != 10 {
		t.Errorf("expected 10 questions, got %d", len(got))
	}
}

func TestAssemble_NeverReturnsDuplicates(t *testing.T) {
	bank := seededBank(20, question.CategoryAlgebra, question.DifficultyMedium)
	a := assembler.New(bank, &stubSource{perCall: 5}, nil, testLogger())

	got := a.Assemble(context.Background(), quiz.Config{
		Categories: []question.Category{question.CategoryAlgebra},
		Count:      25,
		UseAI:      true,
	})

	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("duplicate question ID %s", q.ID)
		}
		seen[q.ID] = true
	}
	if len(got) > 25 {
		t.Errorf("expected at most 25 questions, got %d", len(got))
	}
}

func TestAssemble_ShortCatalogNoAI(t *testing.T) {
	bank := seededBank(2, question.CategoryAlgebra, question.DifficultyMedium)
	a := assembler.New(bank, &stubSource{perCall: 5}, nil, testLogger())

	// 10 requested, catalog has 2 matches, AI disabled → exactly 2, no error.
	got := a.Assemble(context.Background(), quiz.Config{
		Categories: []question.Category{question.CategoryAlgebra},
		Difficulty: question.DifficultyMedium,
		Count:      10,
		UseAI:      false,
	})

	if len(got) != 2 {
		t.Errorf("expected 2 questions from a short catalog, got %d", len(got))
	}
}

func TestAssemble_AITopUpFillsDeficit(t *testing.T) {
	bank := seededBank(2, question.CategoryAlgebra, question.DifficultyMedium)
	src := &stubSource{perCall: 8}
	a := assembler.New(bank, src, nil, testLogger())

	got := a.Assemble(context.Background(), quiz.Config{
		Categories: []question.Category{question.CategoryAlgebra},
		Count:      10,
		UseAI:      true,
	})

	if len(got) != 10 {
		t.Errorf("expected a full 10-question set after top-up, got %d", len(got))
	}
	if src.calls != 1 {
		t.Errorf("expected one generation batch for one category, got %d", src.calls)
	}
	if bank.GeneratedCount() == 0 {
		t.Error("expected generated questions recorded in the bank pool")
	}
}

func TestAssemble_DefaultRotationWhenNoCategories(t *testing.T) {
	bank := questionbank.New(nil, nil)
	src := &stubSource{perCall: 3}
	a := assembler.New(bank, src, nil, testLogger())

	got := a.Assemble(context.Background(), quiz.Config{Count: 12, UseAI: true})

	if src.calls != 4 {
		t.Errorf("expected one batch per default rotation category (4), got %d", src.calls)
	}
	if len(got) == 0 {
		t.Error("expected generated questions")
	}
}

func TestAssemble_SourceFailureIsAbsorbed(t *testing.T) {
	bank := seededBank(3, question.CategoryAlgebra, question.DifficultyMedium)
	a := assembler.New(bank, &stubSource{fail: true}, nil, testLogger())

	got := a.Assemble(context.Background(), quiz.Config{
		Categories: []question.Category{question.CategoryAlgebra},
		Count:      10,
		UseAI:      true,
	})

	// Degraded outcome: just the catalog questions, no panic, no error.
	if len(got) != 3 {
		t.Errorf("expected 3 catalog questions, got %d", len(got))
	}
}

func TestAssemble_CancelledContextDiscardsAugmentation(t *testing.T) {
	bank := seededBank(1, question.CategoryAlgebra, question.DifficultyMedium)
	a := assembler.New(bank, &stubSource{perCall: 5}, nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := a.Assemble(ctx, quiz.Config{
		Categories: []question.Category{question.CategoryAlgebra},
		Count:      10,
		UseAI:      true,
	})

	if len(got) != 1 {
		t.Errorf("expected only the catalog question after cancellation, got %d", len(got))
	}
	if bank.GeneratedCount() != 0 {
		t.Errorf("expected no generated questions applied after cancellation, got %d", bank.GeneratedCount())
	}
}

func TestAssemble_ZeroAndOneElementShuffle(t *testing.T) {
	empty := assembler.New(questionbank.New(nil, nil), &stubSource{}, nil, testLogger())
	if got := empty.Assemble(context.Background(), quiz.Config{Count: 5}); len(got) != 0 {
		t.Errorf("expected empty result from empty bank, got %d", len(got))
	}

	one := assembler.New(seededBank(1, question.CategoryAlgebra, question.DifficultyMedium), &stubSource{}, nil, testLogger())
	got := one.Assemble(context.Background(), quiz.Config{Count: 5})
	if len(got) != 1 || got[0].ID != "cat-0" {
		t.Errorf("expected the single catalog question, got %v", got)
	}
}
