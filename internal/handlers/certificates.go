package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leewillemse/portfolio-backend/internal/models"
	"github.com/leewillemse/portfolio-backend/internal/services"
	"github.com/leewillemse/portfolio-backend/internal/store"
)

// GetCertificates lists certificates, optionally filtered by ?skill=
// (case-insensitive substring on skill_category).
func GetCertificates(w http.ResponseWriter, r *http.Request) {
	listItemsHandler(w, r, store.KindCertificate, services.CertificateFilters)
}

func CreateCertificate(w http.ResponseWriter, r *http.Request) {
	var cert models.Certificate
	if err := json.NewDecoder(r.Body).Decode(&cert); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := cert.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	createItemHandler(w, store.KindCertificate, &cert)
}

func UpdateCertificate(w http.ResponseWriter, r *http.Request) {
	updateItemHandler(w, r, store.KindCertificate)
}

func DeleteCertificate(w http.ResponseWriter, r *http.Request) {
	deleteItemHandler(w, r, store.KindCertificate)
}
