package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leewillemse/portfolio-backend/internal/services"
	"github.com/leewillemse/portfolio-backend/internal/store"
)

type AIQueryRequest struct {
	Question string `json:"question"`
	Focus    string `json:"focus,omitempty"`
}

type AIQueryResponse struct {
	Answer  string                    `json:"answer"`
	Results map[string][]store.Record `json:"results"`
}

// AIQuery answers a free-text question by keyword-ranking projects,
// certificates and journal entries. No external model is involved; see
// services.AnswerQuestion for the scoring rules.
func AIQuery(w http.ResponseWriter, r *http.Request) {
	var req AIQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	answer, results, err := services.AnswerQuestion(ctx, recordStore, req.Question, req.Focus)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AIQueryResponse{Answer: answer, Results: results})
}
