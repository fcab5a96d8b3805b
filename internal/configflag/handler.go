package configflag

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
)

type Store interface {
	Get(ctx context.Context) (domain.Config, error)
	SetLimitedEditionActive(ctx context.Context, active bool) error
}

type Handler struct {
	store  Store
	logger *slog.Logger
}

func NewHandler(store Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get config", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, cfg)
}

type toggleRequest struct {
	LimitedEditionActive *bool `json:"limited_edition_active"`
}

func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.LimitedEditionActive == nil {
		h.writeError(w, http.StatusBadRequest, "limited_edition_active is required")
		return
	}

	if err := h.store.SetLimitedEditionActive(r.Context(), *req.LimitedEditionActive); err != nil {
		h.logger.Error("failed to toggle config", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("limited edition toggled", "active", *req.LimitedEditionActive)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"ok":                     true,
		"limited_edition_active": *req.LimitedEditionActive,
	})
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
