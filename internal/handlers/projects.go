package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/leewillemse/portfolio-backend/internal/models"
	"github.com/leewillemse/portfolio-backend/internal/services"
	"github.com/leewillemse/portfolio-backend/internal/store"
)

// GetProjects lists projects, optionally filtered by ?tag= (highlights) and
// ?tech= (tech_stack); filters combine with AND.
func GetProjects(w http.ResponseWriter, r *http.Request) {
	listItemsHandler(w, r, store.KindProject, services.ProjectFilters)
}

func CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := project.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	createItemHandler(w, store.KindProject, &project)
}

func UpdateProject(w http.ResponseWriter, r *http.Request) {
	updateItemHandler(w, r, store.KindProject)
}

func DeleteProject(w http.ResponseWriter, r *http.Request) {
	deleteItemHandler(w, r, store.KindProject)
}

// listItemsHandler is the shared GET implementation: it builds the filter
// from the kind's query parameters and honors an optional ?limit=.
func listItemsHandler(w http.ResponseWriter, r *http.Request, kind store.Kind, rules []services.FilterRule) {
	filter := services.BuildFilter(rules, r.URL.Query().Get)

	var limit int64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.ParseInt(limitStr, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	ctx, cancel := requestContext()
	defer cancel()

	records, err := services.ListItems(ctx, recordStore, kind, filter, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// createItemHandler inserts a validated model and responds with the stored
// record, id and timestamps included.
func createItemHandler(w http.ResponseWriter, kind store.Kind, model interface{}) {
	doc, err := services.ToDoc(model)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	record, err := services.CreateItem(ctx, recordStore, kind, doc)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}
