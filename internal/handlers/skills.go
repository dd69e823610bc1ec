package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leewillemse/portfolio-backend/internal/models"
	"github.com/leewillemse/portfolio-backend/internal/store"
)

func GetSkillSnapshots(w http.ResponseWriter, r *http.Request) {
	listItemsHandler(w, r, store.KindSkillSnapshot, nil)
}

func CreateSkillSnapshot(w http.ResponseWriter, r *http.Request) {
	var snapshot models.SkillSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := snapshot.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	createItemHandler(w, store.KindSkillSnapshot, &snapshot)
}
