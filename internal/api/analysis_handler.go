// internal/api/analysis_handler.go
package api

import (
	"net/http"
	"time"

	"github.com/satpilot/backend/internal/analysis"
	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/quiz"
)

// ── Response types ──────────────────────────────────────────────────────────

type PerformanceRecordResponse struct {
	ID         string                `json:"id"`
	Result     SessionResultResponse `json:"result"`
	RecordedAt time.Time             `json:"recorded_at"`
}

type SuccessRatesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

type ScorePredictionResponse struct {
	Quantitative int `json:"quantitative"`
	Verbal       int `json:"verbal"`
	Total        int `json:"total"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /performance
func (h *Handler) listPerformance(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if h.handleStoreError(w, err, "performance records") {
		return
	}

	response := make([]PerformanceRecordResponse, len(records))
	for i, rec := range records {
		response[i] = PerformanceRecordResponse{
			ID:         rec.ID,
			Result:     toResultResponse(&rec.Result),
			RecordedAt: rec.RecordedAt,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// GET /performance/rates
func (h *Handler) getSuccessRates(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if h.handleStoreError(w, err, "performance records") {
		return
	}

	rates := analysis.Analyze(records)
	out := make(map[string]float64, len(rates))
	for cat, rate := range rates {
		out[string(cat)] = rate
	}
	respondJSON(w, http.StatusOK, SuccessRatesResponse{Rates: out})
}

// GET /recommendations
func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if h.handleStoreError(w, err, "performance records") {
		return
	}

	recs := analysis.Recommend(analysis.Analyze(records))

	// The reference table points at catalog IDs that may not exist in a
	// custom catalog; keep only suggestions the bank can actually serve.
	for i, rec := range recs {
		present := h.bank.GetManyByIDs(rec.SuggestedQuestionIDs)
		ids := make([]string, len(present))
		for j, q := range present {
			ids[j] = q.ID
		}
		recs[i].SuggestedQuestionIDs = ids
	}
	respondJSON(w, http.StatusOK, recs)
}

// GET /score
func (h *Handler) getScorePrediction(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListRecords(r.Context())
	if h.handleStoreError(w, err, "performance records") {
		return
	}

	var quantitative, verbal []quiz.PerformanceRecord
	for _, rec := range records {
		switch rec.Result.Category.Section() {
		case question.SectionQuantitative:
			quantitative = append(quantitative, rec)
		case question.SectionVerbal:
			verbal = append(verbal, rec)
		}
	}

	prediction := analysis.Predict(quantitative, verbal)
	respondJSON(w, http.StatusOK, ScorePredictionResponse{
		Quantitative: prediction.Quantitative,
		Verbal:       prediction.Verbal,
		Total:        prediction.Total,
	})
}
