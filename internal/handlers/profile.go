package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leewillemse/portfolio-backend/internal/models"
	"github.com/leewillemse/portfolio-backend/internal/services"
	"github.com/leewillemse/portfolio-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// GetProfile returns the most recently created profile, or an empty object
// when none exists.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext()
	defer cancel()

	records, err := recordStore.List(ctx, store.KindProfile, nil, store.ListOptions{
		Limit:    1,
		SortBy:   "created_at",
		SortDesc: true,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if len(records) == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, records[0])
}

func CreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := profile.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := services.ToDoc(&profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	record, err := services.CreateItem(ctx, recordStore, store.KindProfile, doc)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	updateItemHandler(w, r, store.KindProfile)
}

// updateItemHandler is the shared PATCH implementation: it merges the raw
// body fields into the record identified by the {id} URL parameter.
func updateItemHandler(w http.ResponseWriter, r *http.Request, kind store.Kind) {
	id := chi.URLParam(r, "id")

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	record, err := services.UpdateItem(ctx, recordStore, kind, id, updates)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// deleteItemHandler is the shared DELETE implementation.
func deleteItemHandler(w http.ResponseWriter, r *http.Request, kind store.Kind) {
	id := chi.URLParam(r, "id")

	ctx, cancel := requestContext()
	defer cancel()

	if err := services.DeleteItem(ctx, recordStore, kind, id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
