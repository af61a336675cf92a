package questionbank

import (
	"sync"

	"github.com/satpilot/backend/internal/domain/question"
)

// Bank holds the static question catalog plus a growing pool of dynamically
// generated questions. Lookups never fail; absence is an empty result.
//
// The generated pool is append-only: entries are added or fully cleared,
// never mutated in place, so concurrent sessions can share one Bank.
type Bank struct {
	mu        sync.RWMutex
	catalog   []question.Question
	generated []question.Question
	passages  map[string]question.Passage
}

// New creates a Bank seeded with the given catalog questions and passages.
func New(catalog []question.Question, passages []question.Passage) *Bank {
	b := &Bank{
		catalog:  make([]question.Question, len(catalog)),
		passages: make(map[string]question.Passage, len(passages)),
	}
	copy(b.catalog, catalog)
	for _, p := range passages {
		b.passages[p.ID] = p
	}
	return b
}

// Criteria filters bank queries. Zero values match everything.
type Criteria struct {
	Categories []question.Category // empty = any
	Difficulty question.Difficulty // "" = any
}

func (c Criteria) matches(q question.Question) bool {
	if c.Difficulty != "" && q.Difficulty != c.Difficulty {
		return false
	}
	if len(c.Categories) == 0 {
		return true
	}
	for _, cat := range c.Categories {
		if q.Category == cat {
			return true
		}
	}
	return false
}

// FindByCriteria returns every stored question (catalog + generated) matching
// all supplied filters. No ordering guarantee; callers randomize themselves.
func (b *Bank) FindByCriteria(c Criteria) []question.Question {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []question.Question
	for _, q := range b.catalog {
		if c.matches(q) {
			out = append(out, q)
		}
	}
	for _, q := range b.generated {
		if c.matches(q) {
			out = append(out, q)
		}
	}
	return out
}

// GetByID returns the question with the given ID, if present.
func (b *Bank) GetByID(id string) (question.Question, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, q := range b.catalog {
		if q.ID == id {
			return q, true
		}
	}
	for _, q := range b.generated {
		if q.ID == id {
			return q, true
		}
	}
	return question.Question{}, false
}

// GetManyByIDs returns the questions for the given IDs, silently omitting
// unknown ones. Lenient lookup is deliberate: callers pass IDs recorded in
// past sessions and the generated pool may have been cleared since.
func (b *Bank) GetManyByIDs(ids []string) []question.Question {
	var out []question.Question
	for _, id := range ids {
		if q, ok := b.GetByID(id); ok {
			out = append(out, q)
		}
	}
	return out
}

// AddGenerated appends questions to the generated pool. Questions whose ID
// already exists anywhere in the bank are dropped; there is no deduplication
// by content.
func (b *Bank) AddGenerated(questions []question.Question) {
	b.mu.Lock()
	defer b.mu.Unlock()

	seen := make(map[string]struct{}, len(b.catalog)+len(b.generated))
	for _, q := range b.catalog {
		seen[q.ID] = struct{}{}
	}
	for _, q := range b.generated {
		seen[q.ID] = struct{}{}
	}

	for _, q := range questions {
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		b.generated = append(b.generated, q)
	}
}

// ClearGenerated empties the generated pool. Catalog questions are unaffected.
func (b *Bank) ClearGenerated() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generated = nil
}

// GeneratedCount reports the size of the generated pool.
func (b *Bank) GeneratedCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.generated)
}

// Generated returns a copy of the generated pool, for persistence.
func (b *Bank) Generated() []question.Question {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]question.Question, len(b.generated))
	copy(out, b.generated)
	return out
}

// GetPassage returns the reading passage with the given ID, if present.
func (b *Bank) GetPassage(id string) (question.Passage, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.passages[id]
	return p, ok
}
