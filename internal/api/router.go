// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires all handler methods onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Questions
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("GET /questions/{questionID}", h.getQuestion)
	mux.HandleFunc("DELETE /questions/generated", h.clearGenerated)
	mux.HandleFunc("GET /passages/{passageID}", h.getPassage)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("GET /sessions/{sessionID}/question", h.getCurrentQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/answer", h.selectAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/submit", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/skip", h.skipQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.advanceSession)
	mux.HandleFunc("POST /sessions/{sessionID}/abandon", h.abandonSession)
	mux.HandleFunc("GET /sessions/{sessionID}/result", h.getSessionResult)

	// Performance
	mux.HandleFunc("GET /performance", h.listPerformance)
	mux.HandleFunc("GET /performance/rates", h.getSuccessRates)
	mux.HandleFunc("GET /recommendations", h.getRecommendations)
	mux.HandleFunc("GET /score", h.getScorePrediction)
}
