package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/satpilot/backend/internal/api"
	"github.com/satpilot/backend/internal/assembler"
	"github.com/satpilot/backend/internal/domain/question"
	"github.com/satpilot/backend/internal/domain/questionbank"
	"github.com/satpilot/backend/internal/domain/quiz"
	"github.com/satpilot/backend/internal/service"
	"github.com/satpilot/backend/internal/store"
)

// memStore is a minimal in-memory Store for handler tests.
type memStore struct {
	mu        sync.Mutex
	records   map[string]quiz.PerformanceRecord
	generated []question.Question
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]quiz.PerformanceRecord)}
}

func (m *memStore) SaveRecord(_ context.Context, rec quiz.PerformanceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

func (m *memStore) GetRecord(_ context.Context, id string) (quiz.PerformanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return quiz.PerformanceRecord{}, store.ErrNotFound
	}
	return rec, nil
}

func (m *memStore) ListRecords(_ context.Context) ([]quiz.PerformanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]quiz.PerformanceRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memStore) SaveGenerated(_ context.Context, qs []question.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated = append(m.generated, qs...)
	return nil
}

func (m *memStore) LoadGenerated(context.Context) ([]question.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generated, nil
}

func (m *memStore) ClearGenerated(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated = nil
	return nil
}

func (m *memStore) Close() error { return nil }

func testBank() *questionbank.Bank {
	catalog := []question.Question{
		{
			ID: "alg-1", Prompt: "Solve 2x = 6", Options: []string{"1", "2", "3", "4"},
			AnswerIndex: 2, Explanation: "Divide both sides by 2.",
			Category: question.CategoryAlgebra, Difficulty: question.DifficultyEasy,
		},
		{
			ID: "alg-2", Prompt: "Solve x + 1 = 3", Options: []string{"1", "2", "3", "4"},
			AnswerIndex: 1,
			Category:    question.CategoryAlgebra, Difficulty: question.DifficultyEasy,
		},
		{
			ID: "voc-1", Prompt: "Synonym of rapid", Options: []string{"slow", "fast", "dull", "late"},
			AnswerIndex: 1,
			Category:    question.CategoryVocabulary, Difficulty: question.DifficultyMedium,
		},
	}
	passages := []question.Passage{
		{ID: "psg-1", Title: "Sample", Body: "Passage text."},
	}
	return questionbank.New(catalog, passages)
}

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bank := testBank()
	st := newMemStore()
	asm := assembler.New(bank, nil, nil, logger)
	sessions := service.NewSessionService(asm, bank, st, logger)
	handler := api.NewHandler(bank, sessions, st, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, st
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode failed: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do failed: %v", err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
	}
	return resp.StatusCode
}

func TestListQuestions_FilterByCategory(t *testing.T) {
	srv, _ := newTestServer(t)

	var questions []api.QuestionResponse
	status := doJSON(t, http.MethodGet, srv.URL+"/questions?category=algebra", nil, &questions)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(questions) != 2 {
		t.Errorf("expected 2 algebra questions, got %d", len(questions))
	}

	status = doJSON(t, http.MethodGet, srv.URL+"/questions?category=chemistry", nil, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown category, got %d", status)
	}
}

func TestGetQuestion_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	status := doJSON(t, http.MethodGet, srv.URL+"/questions/missing", nil, nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestGetPassage(t *testing.T) {
	srv, _ := newTestServer(t)

	var passage api.PassageResponse
	status := doJSON(t, http.MethodGet, srv.URL+"/passages/psg-1", nil, &passage)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if passage.Body != "Passage text." {
		t.Errorf("unexpected passage: %+v", passage)
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv, st := newTestServer(t)

	var created api.CreateSessionResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/sessions", api.CreateSessionRequest{
		Categories: []string{"algebra"},
		Count:      2,
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if created.Questions != 2 {
		t.Fatalf("expected 2 questions, got %d", created.Questions)
	}
	if created.Category != "algebra" {
		t.Errorf("expected algebra tag, got %s", created.Category)
	}

	base := srv.URL + "/sessions/" + created.ID

	// Submitting before selecting is a conflict.
	status = doJSON(t, http.MethodPost, base+"/submit", nil, nil)
	if status != http.StatusConflict {
		t.Errorf("expected 409 before selection, got %d", status)
	}

	// First question: fetch, answer, submit, advance.
	var current api.CurrentQuestionResponse
	status = doJSON(t, http.MethodGet, base+"/question", nil, &current)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(current.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(current.Options))
	}

	status = doJSON(t, http.MethodPost, base+"/answer", api.SelectAnswerRequest{Choice: 99}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for out-of-range choice, got %d", status)
	}

	status = doJSON(t, http.MethodPost, base+"/answer", api.SelectAnswerRequest{Choice: 0}, nil)
	if status != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}

	var feedback api.FeedbackResponse
	status = doJSON(t, http.MethodPost, base+"/submit", nil, &feedback)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if feedback.AnswerIndex < 0 || feedback.AnswerIndex > 3 {
		t.Errorf("bad answer index %d", feedback.AnswerIndex)
	}

	var adv api.AdvanceResponse
	status = doJSON(t, http.MethodPost, base+"/advance", nil, &adv)
	if status != http.StatusOK || adv.Done {
		t.Fatalf("expected mid-session advance, got status %d done %v", status, adv.Done)
	}

	// Second question: skip and advance to completion.
	status = doJSON(t, http.MethodPost, base+"/skip", nil, nil)
	if status != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}
	status = doJSON(t, http.MethodPost, base+"/advance", nil, &adv)
	if status != http.StatusOK || !adv.Done {
		t.Fatalf("expected completing advance, got status %d done %v", status, adv.Done)
	}

	// Result stays addressable after the session is retired.
	var result api.SessionResultResponse
	status = doJSON(t, http.MethodGet, base+"/result", nil, &result)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if result.TotalQuestions != 2 || result.Skipped != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.Correct+result.Incorrect+result.Skipped != result.TotalQuestions {
		t.Errorf("tallies do not sum: %+v", result)
	}

	if len(st.records) != 1 {
		t.Errorf("expected 1 persisted record, got %d", len(st.records))
	}
}

func TestAbandonSession(t *testing.T) {
	srv, _ := newTestServer(t)

	var created api.CreateSessionResponse
	status := doJSON(t, http.MethodPost, srv.URL+"/sessions", api.CreateSessionRequest{Count: 3}, &created)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}

	var result api.SessionResultResponse
	status = doJSON(t, http.MethodPost, srv.URL+"/sessions/"+created.ID+"/abandon", nil, &result)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !result.Abandoned || result.Skipped != 3 {
		t.Errorf("unexpected abandon result: %+v", result)
	}
}

func TestCreateSession_Validation(t *testing.T) {
	srv, _ := newTestServer(t)

	status := doJSON(t, http.MethodPost, srv.URL+"/sessions", api.CreateSessionRequest{Count: 0}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for zero count, got %d", status)
	}

	status = doJSON(t, http.MethodPost, srv.URL+"/sessions", api.CreateSessionRequest{
		Categories: []string{"geometry"},
		Count:      5,
	}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 when nothing matches, got %d", status)
	}
}

func TestRecommendationsAndScore(t *testing.T) {
	srv, st := newTestServer(t)
	ctx := context.Background()

	st.SaveRecord(ctx, quiz.PerformanceRecord{
		ID: "rec-1",
		Result: quiz.SessionResult{
			Correct: 3, Incorrect: 7, TotalQuestions: 10,
			Category: question.CategoryAlgebra, Difficulty: question.DifficultyMedium,
		},
	})
	st.SaveRecord(ctx, quiz.PerformanceRecord{
		ID: "rec-2",
		Result: quiz.SessionResult{
			Correct: 9, Incorrect: 1, TotalQuestions: 10,
			Category: question.CategoryVocabulary, Difficulty: question.DifficultyMedium,
		},
	})

	var rates api.SuccessRatesResponse
	status := doJSON(t, http.MethodGet, srv.URL+"/performance/rates", nil, &rates)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if rates.Rates["algebra"] != 0.3 {
		t.Errorf("expected algebra rate 0.3, got %v", rates.Rates["algebra"])
	}

	var recs []map[string]any
	status = doJSON(t, http.MethodGet, srv.URL+"/recommendations", nil, &recs)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(recs) != 1 {
		t.Fatalf("expected only algebra below threshold, got %d recommendations", len(recs))
	}
	if recs[0]["category"] != "algebra" {
		t.Errorf("expected algebra recommendation, got %v", recs[0]["category"])
	}

	var score api.ScorePredictionResponse
	status = doJSON(t, http.MethodGet, srv.URL+"/score", nil, &score)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if score.Quantitative != 240 {
		t.Errorf("expected quantitative 240, got %d", score.Quantitative)
	}
	if score.Verbal != 720 {
		t.Errorf("expected verbal 720, got %d", score.Verbal)
	}
	if score.Total != 960 {
		t.Errorf("expected total 960, got %d", score.Total)
	}
}

func TestClearGenerated(t *testing.T) {
	srv, st := newTestServer(t)
	st.generated = []question.Question{{ID: "gen-1"}}

	var cleared api.ClearGeneratedResponse
	status := doJSON(t, http.MethodGet, srv.URL+"/questions/missing", nil, nil)
	if status != http.StatusNotFound {
		t.Fatalf("sanity check failed: %d", status)
	}

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/questions/generated", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&cleared); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(st.generated) != 0 {
		t.Error("expected store pool cleared")
	}
}
