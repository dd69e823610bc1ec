package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leewillemse/portfolio-backend/internal/models"
	"github.com/leewillemse/portfolio-backend/internal/store"
)

func GetMilestones(w http.ResponseWriter, r *http.Request) {
	listItemsHandler(w, r, store.KindMilestone, nil)
}

func CreateMilestone(w http.ResponseWriter, r *http.Request) {
	var milestone models.Milestone
	if err := json.NewDecoder(r.Body).Decode(&milestone); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := milestone.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	createItemHandler(w, store.KindMilestone, &milestone)
}
