// internal/api/session_handler.go
package api

import (
	"net/http"
	"time"

	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/quiz"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Categories []string `json:"categories,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Count      int      `json:"count"`
	UseAI      bool     `json:"use_ai"`
}

type CreateSessionResponse struct {
	ID         string `json:"id"`
	Questions  int    `json:"questions"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty,omitempty"`
}

type SessionProgressResponse struct {
	ID        string `json:"id"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	Completed bool   `json:"completed"`
}

type CurrentQuestionResponse struct {
	ID        string   `json:"id"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
	Category  string   `json:"category"`
	PassageID string   `json:"passage_id,omitempty"`
	Index     int      `json:"index"`
	Total     int      `json:"total"`
}

type SelectAnswerRequest struct {
	Choice int `json:"choice"`
}

type FeedbackResponse struct {
	Correct     bool   `json:"correct"`
	AnswerIndex int    `json:"answer_index"`
	Explanation string `json:"explanation,omitempty"`
}

type AdvanceResponse struct {
	Done bool `json:"done"`
}

type SessionResultResponse struct {
	Correct           int       `json:"correct"`
	Incorrect         int       `json:"incorrect"`
	Skipped           int       `json:"skipped"`
	TotalQuestions    int       `json:"total_questions"`
	SuccessRate       float64   `json:"success_rate"`
	TotalSeconds      float64   `json:"total_seconds"`
	QuestionSeconds   []float64 `json:"question_seconds"`
	Category          string    `json:"category"`
	Difficulty        string    `json:"difficulty"`
	MissedQuestionIDs []string  `json:"missed_question_ids"`
	CompletedAt       time.Time `json:"completed_at"`
	Abandoned         bool      `json:"abandoned"`
}

func toResultResponse(result *quiz.SessionResult) SessionResultResponse {
	return SessionResultResponse{
		Correct:           result.Correct,
		Incorrect:         result.Incorrect,
		Skipped:           result.Skipped,
		TotalQuestions:    result.TotalQuestions,
		SuccessRate:       result.SuccessRate(),
		TotalSeconds:      result.TotalSeconds,
		QuestionSeconds:   result.QuestionSeconds,
		Category:          string(result.Category),
		Difficulty:        string(result.Difficulty),
		MissedQuestionIDs: result.MissedQuestionIDs,
		CompletedAt:       result.CompletedAt,
		Abandoned:         result.Abandoned,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /sessions
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Count <= 0 {
		http.Error(w, "count must be positive", http.StatusBadRequest)
		return
	}

	cfg := quiz.Config{
		Count: req.Count,
		UseAI: req.UseAI,
	}
	for _, c := range req.Categories {
		cat := question.Category(c)
		if !cat.Valid() {
			http.Error(w, "unknown category: "+c, http.StatusBadRequest)
			return
		}
		cfg.Categories = append(cfg.Categories, cat)
	}
	if req.Difficulty != "" {
		diff := question.Difficulty(req.Difficulty)
		if !diff.Valid() {
			http.Error(w, "unknown difficulty: "+req.Difficulty, http.StatusBadRequest)
			return
		}
		cfg.Difficulty = diff
	}

	sessionID, runner, err := h.sessions.StartSession(r.Context(), cfg)
	if h.handleQuizError(w, err) {
		return
	}

	_, total := runner.Progress()
	respondJSON(w, http.StatusCreated, CreateSessionResponse{
		ID:         sessionID,
		Questions:  total,
		Category:   string(cfg.ResultCategory()),
		Difficulty: string(cfg.Difficulty),
	})
}

// GET /sessions/{sessionID}
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	runner, err := h.sessions.GetRunner(sessionID)
	if h.handleQuizError(w, err) {
		return
	}

	index, total := runner.Progress()
	respondJSON(w, http.StatusOK, SessionProgressResponse{
		ID:        sessionID,
		Index:     index,
		Total:     total,
		Completed: runner.Completed(),
	})
}

// GET /sessions/{sessionID}/question
//
// The answer index and explanation are withheld until the answer
// is submitted.
func (h *Handler) getCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	runner, err := h.sessions.GetRunner(sessionID)
	if h.handleQuizError(w, err) {
		return
	}

	q, err := runner.CurrentQuestion()
	if h.handleQuizError(w, err) {
		return
	}

	index, total := runner.Progress()
	respondJSON(w, http.StatusOK, CurrentQuestionResponse{
		ID:        q.ID,
		Prompt:    q.Prompt,
		Options:   q.Options,
		Category:  string(q.Category),
		PassageID: q.PassageID,
		Index:     index,
		Total:     total,
	})
}

// POST /sessions/{sessionID}/answer
func (h *Handler) selectAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req SelectAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	runner, err := h.sessions.GetRunner(sessionID)
	if h.handleQuizError(w, err) {
		return
	}
	if h.handleQuizError(w, runner.SelectAnswer(req.Choice)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /sessions/{sessionID}/submit
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	runner, err := h.sessions.GetRunner(sessionID)
	if h.handleQuizError(w, err) {
		return
	}

	feedback, err := runner.SubmitAnswer()
	if h.handleQuizError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, FeedbackResponse{
		Correct:     feedback.Correct,
		AnswerIndex: feedback.AnswerIndex,
		Explanation: feedback.Explanation,
	})
}

// POST /sessions/{sessionID}/skip
func (h *Handler) skipQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	runner, err := h.sessions.GetRunner(sessionID)
	if h.handleQuizError(w, err) {
		return
	}
	if h.handleQuizError(w, runner.Skip()) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /sessions/{sessionID}/advance
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	done, err := h.sessions.Advance(r.Context(), sessionID)
	if h.handleQuizError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, AdvanceResponse{Done: done})
}

// POST /sessions/{sessionID}/abandon
func (h *Handler) abandonSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	result, err := h.sessions.Abandon(r.Context(), sessionID)
	if h.handleQuizError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toResultResponse(result))
}

// GET /sessions/{sessionID}/result
func (h *Handler) getSessionResult(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	result, err := h.sessions.Result(r.Context(), sessionID)
	if h.handleQuizError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toResultResponse(result))
}
