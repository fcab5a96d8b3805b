// Package system serves the liveness, diagnostic and schema endpoints.
package system

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gramtop961/gilded-gaze-backend/internal/store"
)

type Handler struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewHandler accepts a nil db; the diagnostic endpoint then reports the
// store as unavailable instead of failing.
func NewHandler(db *mongo.Database, logger *slog.Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "The Gilded Gaze API running"})
}

// HandleDiagnostics reports store connectivity. It never fails the
// request: every store error is caught and folded into the status map.
func (h *Handler) HandleDiagnostics(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.db != nil {
		if os.Getenv("DATABASE_URL") != "" {
			response["database_url"] = "set"
		} else {
			response["database_url"] = "not set"
		}
		response["database_name"] = h.db.Name()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		names, err := h.db.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			response["database"] = "connected but error: " + truncate(err.Error(), 50)
		} else {
			response["database"] = "connected"
			response["connection_status"] = "connected"
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
		}
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) HandleSchema(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{"collections": store.Names()})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
