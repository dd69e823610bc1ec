package handlers

import (
	"net/http"

	"github.com/leewillemse/portfolio-backend/internal/services"
)

// GetStats returns the aggregate counts and the skills-mastered figure,
// recomputed from the store on every call.
func GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext()
	defer cancel()

	stats, err := services.CollectStats(ctx, recordStore)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
