package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
)

// Reader is the read-only catalog surface the handler delegates to.
type Reader interface {
	ListByCollection(ctx context.Context, handle string) ([]ProductWithStock, error)
	GetByID(ctx context.Context, id domain.ProductID) (*ProductWithStock, error)
}

type Handler struct {
	reader Reader
	logger *slog.Logger
}

func NewHandler(reader Reader, logger *slog.Logger) *Handler {
	return &Handler{
		reader: reader,
		logger: logger,
	}
}

func (h *Handler) HandleListByCollection(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if handle == "" {
		h.writeError(w, http.StatusBadRequest, "missing collection handle")
		return
	}

	products, err := h.reader.ListByCollection(r.Context(), handle)
	if err != nil {
		h.logger.Error("failed to list products", "error", err, "handle", handle)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("products listed", "handle", handle, "count", len(products))
	h.writeJSON(w, http.StatusOK, products)
}

func (h *Handler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseProductID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	product, err := h.reader.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get product", "error", err, "product_id", id.Hex())
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if product == nil {
		h.writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	h.logger.Info("product retrieved", "product_id", id.Hex())
	h.writeJSON(w, http.StatusOK, product)
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
