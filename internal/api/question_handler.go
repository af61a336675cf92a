// internal/api/question_handler.go
package api

import (
	"net/http"

	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionResponse struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Generated   bool     `json:"generated"`
	PassageID   string   `json:"passage_id,omitempty"`
}

type PassageResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	SourceURL   string   `json:"source_url,omitempty"`
	QuestionIDs []string `json:"question_ids,omitempty"`
}

type ClearGeneratedResponse struct {
	Cleared int `json:"cleared"`
}

func toQuestionResponse(q question.Question) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		Prompt:      q.Prompt,
		Options:     q.Options,
		AnswerIndex: q.AnswerIndex,
		Explanation: q.Explanation,
		Category:    string(q.Category),
		Difficulty:  string(q.Difficulty),
		Generated:   q.Generated,
		PassageID:   q.PassageID,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /questions?category=&difficulty=
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	criteria := questionbank.Criteria{}

	if cat := r.URL.Query().Get("category"); cat != "" {
		c := question.Category(cat)
		if !c.Valid() {
			http.Error(w, "unknown category: "+cat, http.StatusBadRequest)
			return
		}
		criteria.Categories = []question.Category{c}
	}
	if diff := r.URL.Query().Get("difficulty"); diff != "" {
		d := question.Difficulty(diff)
		if !d.Valid() {
			http.Error(w, "unknown difficulty: "+diff, http.StatusBadRequest)
			return
		}
		criteria.Difficulty = d
	}

	matches := h.bank.FindByCriteria(criteria)

	response := make([]QuestionResponse, len(matches))
	for i, q := range matches {
		response[i] = toQuestionResponse(q)
	}
	respondJSON(w, http.StatusOK, response)
}

// GET /questions/{questionID}
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionID")

	q, ok := h.bank.GetByID(questionID)
	if !ok {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, toQuestionResponse(q))
}

// DELETE /questions/generated
func (h *Handler) clearGenerated(w http.ResponseWriter, r *http.Request) {
	cleared := h.bank.GeneratedCount()
	h.bank.ClearGenerated()

	if err := h.store.ClearGenerated(r.Context()); err != nil {
		h.logger.Error("failed to clear generated pool", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, ClearGeneratedResponse{Cleared: cleared})
}

// GET /passages/{passageID}
func (h *Handler) getPassage(w http.ResponseWriter, r *http.Request) {
	passageID := r.PathValue("passageID")

	p, ok := h.bank.GetPassage(passageID)
	if !ok {
		http.Error(w, "passage not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, PassageResponse{
		ID:          p.ID,
		Title:       p.Title,
		Body:        p.Body,
		SourceURL:   p.SourceURL,
		QuestionIDs: p.QuestionIDs,
	})
}
