package seed

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Handler struct {
	seeder *Seeder
	logger *slog.Logger
}

func NewHandler(seeder *Seeder, logger *slog.Logger) *Handler {
	return &Handler{
		seeder: seeder,
		logger: logger,
	}
}

func (h *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	if err := h.seeder.Seed(r.Context()); err != nil {
		h.logger.Error("failed to seed store", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "seeded"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
