package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leewillemse/portfolio-backend/internal/models"
	"github.com/leewillemse/portfolio-backend/internal/services"
	"github.com/leewillemse/portfolio-backend/internal/store"
)

// GetJournal lists journal entries, optionally filtered by ?tag=
// (case-insensitive substring against any tag).
func GetJournal(w http.ResponseWriter, r *http.Request) {
	listItemsHandler(w, r, store.KindJournalEntry, services.JournalFilters)
}

func CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.JournalEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := entry.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	createItemHandler(w, store.KindJournalEntry, &entry)
}

func UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	updateItemHandler(w, r, store.KindJournalEntry)
}

func DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	deleteItemHandler(w, r, store.KindJournalEntry)
}
