package reviews

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
)

type Ledger interface {
	ListByProduct(ctx context.Context, productID domain.ProductID) ([]domain.Review, error)
	Append(ctx context.Context, review domain.Review) (domain.ReviewID, error)
}

type Handler struct {
	ledger Ledger
	logger *slog.Logger
}

func NewHandler(ledger Ledger, logger *slog.Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	productID, err := domain.ParseProductID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	list, err := h.ledger.ListByProduct(r.Context(), productID)
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err, "product_id", productID.Hex())
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, list)
}

type addReviewRequest struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	productID, err := domain.ParseProductID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review := domain.Review{
		ProductID: productID.Hex(),
		Author:    req.Author,
		Rating:    req.Rating,
		Content:   req.Content,
	}

	// Bounds are checked before anything is written.
	if err := review.Validate(); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	reviewID, err := h.ledger.Append(r.Context(), review)
	if err != nil {
		h.logger.Error("failed to append review", "error", err, "product_id", productID.Hex())
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("review added", "product_id", productID.Hex(), "review_id", reviewID.Hex(), "rating", req.Rating)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"review_id": reviewID.Hex(),
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
