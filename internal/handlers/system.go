package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/leewillemse/portfolio-backend/internal/database"
	"go.mongodb.org/mongo-driver/bson"
)

// Root is the liveness endpoint.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Portfolio API running"})
}

// TestDatabase reports store connectivity as a best-effort diagnostic. It
// never fails the process: every fault degrades to a status string.
func TestDatabase(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if database.DB == nil {
		writeJSON(w, http.StatusOK, response)
		return
	}

	response["database"] = "✅ Available"
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("MONGODB_URI") != "" {
		response["database_url"] = "✅ Set"
	}
	response["database_name"] = database.DB.Name()
	response["connection_status"] = "Connected"

	ctx, cancel := requestContext()
	defer cancel()

	names, err := database.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		msg := err.Error()
		if len(msg) > 80 {
			msg = msg[:80]
		}
		response["database"] = fmt.Sprintf("⚠️ Connected but Error: %s", msg)
	} else {
		if len(names) > 20 {
			names = names[:20]
		}
		response["collections"] = names
		response["database"] = "✅ Connected & Working"
	}

	writeJSON(w, http.StatusOK, response)
}
