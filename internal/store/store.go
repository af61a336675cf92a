package store

import (
	"context"
	"errors"

	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/quiz"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store persists what outlives a process: performance records accumulated
// across sessions, and the generated-question pool. Live session state never
// touches the store; it belongs to the runner alone.
type Store interface {
	SaveRecord(ctx context.Context, rec quiz.PerformanceRecord) error
	GetRecord(ctx context.Context, id string) (quiz.PerformanceRecord, error)
	ListRecords(ctx context.Context) ([]quiz.PerformanceRecord, error)

	SaveGenerated(ctx context.Context, questions []question.Question) error
	LoadGenerated(ctx context.Context) ([]question.Question, error)
	ClearGenerated(ctx context.Context) error

	Close() error
}
