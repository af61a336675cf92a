// internal/service/sessions.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/satpilot/backend/internal/assembler"
	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/questionbank"
	"github.com/satpilot/backend/internal/domain/quiz"
	"github.com/satpilot/backend/internal/store"
)

// SessionService owns the live quiz runners. Each started session gets
// a UUID and a Runner; finished sessions are persisted through the
// store and dropped from the map.
type SessionService struct {
	assembler *assembler.Assembler
	bank      *questionbank.Bank
	store     store.Store
	logger    *slog.Logger

	mu      sync.RWMutex
	runners map[string]*quiz.Runner
}

// NewSessionService creates a SessionService.
func NewSessionService(a *assembler.Assembler, bank *questionbank.Bank, s store.Store, logger *slog.Logger) *SessionService {
	return &SessionService{
		assembler: a,
		bank:      bank,
		store:     s,
		logger:    logger,
		runners:   make(map[string]*quiz.Runner),
	}
}

// StartSession assembles a question set for the given config and starts
// a new runner for it. Returns the new session ID.
func (ss *SessionService) StartSession(ctx context.Context, cfg quiz.Config) (string, *quiz.Runner, error) {
	questions := ss.assembler.Assemble(ctx, cfg)

	// Assembly may have grown the generated pool; the store insert is
	// keyed on question ID so re-saving the pool is idempotent.
	if cfg.UseAI {
		if err := ss.store.SaveGenerated(ctx, ss.bank.Generated()); err != nil {
			ss.logger.Error("failed to persist generated questions", "error", err)
		}
	}

	difficulty := cfg.Difficulty
	if difficulty == "" {
		difficulty = question.Difficulty("mixed")
	}

	runner, err := quiz.Start(questions, cfg.ResultCategory(), difficulty)
	if err != nil {
		return "", nil, err
	}

	sessionID := uuid.NewString()

	ss.mu.Lock()
	ss.runners[sessionID] = runner
	ss.mu.Unlock()

	ss.logger.Info("session started",
		"session_id", sessionID,
		"questions", len(questions),
		"category", cfg.ResultCategory(),
	)

	return sessionID, runner, nil
}

// GetRunner returns the live runner for a session.
func (ss *SessionService) GetRunner(sessionID string) (*quiz.Runner, error) {
	ss.mu.RLock()
	runner, ok := ss.runners[sessionID]
	ss.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, store.ErrNotFound)
	}
	return runner, nil
}

// Advance moves a session to its next question. When the runner reports
// completion the result is persisted and the session is retired.
func (ss *SessionService) Advance(ctx context.Context, sessionID string) (bool, error) {
	runner, err := ss.GetRunner(sessionID)
	if err != nil {
		return false, err
	}

	done, err := runner.Advance()
	if err != nil {
		return false, err
	}
	if done {
		if err := ss.retire(ctx, sessionID, runner); err != nil {
			return true, err
		}
	}
	return done, nil
}

// Abandon ends a session early, scoring the remaining questions as
// skipped, and persists the partial result.
func (ss *SessionService) Abandon(ctx context.Context, sessionID string) (*quiz.SessionResult, error) {
	runner, err := ss.GetRunner(sessionID)
	if err != nil {
		return nil, err
	}

	result, err := runner.Abandon()
	if err != nil {
		return nil, err
	}
	if err := ss.retire(ctx, sessionID, runner); err != nil {
		return result, err
	}
	return result, nil
}

// Result returns the final result of a completed session. Live sessions
// are checked first; otherwise the persisted record is consulted.
func (ss *SessionService) Result(ctx context.Context, sessionID string) (*quiz.SessionResult, error) {
	ss.mu.RLock()
	runner, ok := ss.runners[sessionID]
	ss.mu.RUnlock()

	if ok {
		return runner.Result()
	}

	rec, err := ss.store.GetRecord(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &rec.Result, nil
}

// retire persists the final result and removes the runner from the map.
// The record keeps the session ID so results stay addressable after
// the runner is gone.
func (ss *SessionService) retire(ctx context.Context, sessionID string, runner *quiz.Runner) error {
	result, err := runner.Result()
	if err != nil {
		return err
	}

	rec := quiz.PerformanceRecord{
		ID:         sessionID,
		Result:     *result,
		RecordedAt: time.Now().UTC(),
	}
	if err := ss.store.SaveRecord(ctx, rec); err != nil {
		ss.logger.Error("failed to persist session result", "session_id", sessionID, "error", err)
		return fmt.Errorf("persisting session result: %w", err)
	}

	ss.mu.Lock()
	delete(ss.runners, sessionID)
	ss.mu.Unlock()

	ss.logger.Info("session retired",
		"session_id", sessionID,
		"correct", result.Correct,
		"incorrect", result.Incorrect,
		"skipped", result.Skipped,
		"abandoned", result.Abandoned,
	)
	return nil
}
