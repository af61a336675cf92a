// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/satpilot/backend/internal/domain/questionbank"
	"github.com/satpilot/backend/internal/domain/quiz"
	"github.com/satpilot/backend/internal/service"
	"github.com/satpilot/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	bank     *questionbank.Bank
	sessions *service.SessionService
	store    store.Store
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(bank *questionbank.Bank, sessions *service.SessionService, s store.Store, logger *slog.Logger) *Handler {
	return &Handler{
		bank:     bank,
		sessions: sessions,
		store:    s,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. On failure it writes a
// 400 response and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, entity+" not found", http.StatusNotFound)
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	http.Error(w, "internal error", http.StatusInternalServerError)
	return true
}

// handleQuizError maps quiz state-machine errors onto HTTP statuses.
// Out-of-order calls are conflicts, bad input is a bad request.
// Returns true if an error was handled.
func (h *Handler) handleQuizError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, quiz.ErrInvalidChoice), errors.Is(err, quiz.ErrEmptySession):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, quiz.ErrNoSelection),
		errors.Is(err, quiz.ErrAlreadySubmitted),
		errors.Is(err, quiz.ErrQuestionPending),
		errors.Is(err, quiz.ErrSessionComplete),
		errors.Is(err, quiz.ErrSessionNotComplete):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("session error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	return true
}
