package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
	"github.com/gramtop961/gilded-gaze-backend/internal/messaging"
)

type Handler struct {
	engine   *Engine
	producer *messaging.Producer
	logger   *slog.Logger
}

// NewHandler wires the checkout route. The producer may be nil; checkout
// then commits orders without publishing events.
func NewHandler(engine *Engine, producer *messaging.Producer, logger *slog.Logger) *Handler {
	return &Handler{
		engine:   engine,
		producer: producer,
		logger:   logger,
	}
}

type checkoutRequest struct {
	Items    []domain.OrderItem `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Email    string             `json:"email"`
	Name     string             `json:"name"`
	Address  string             `json:"address"`
}

func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order := &domain.Order{
		Items:    req.Items,
		Subtotal: req.Subtotal,
		Email:    req.Email,
		Name:     req.Name,
		Address:  req.Address,
	}

	if err := order.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			h.writeError(w, http.StatusBadRequest, "Invalid ID")
			return
		}
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	orderID, err := h.engine.PlaceOrder(r.Context(), order)
	if err != nil {
		var stockErr *InsufficientStockError
		if errors.As(err, &stockErr) {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Insufficient stock for %s", stockErr.Title))
			return
		}
		h.logger.Error("failed to place order", "error", err, "email", req.Email)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.producer != nil {
		event := domain.OrderPlacedEvent{
			EventID:  uuid.New().String(),
			OrderID:  orderID.Hex(),
			Email:    order.Email,
			Items:    order.Items,
			Subtotal: order.Subtotal,
			PlacedAt: time.Now().UTC(),
		}
		if err := h.producer.Publish(r.Context(), event.OrderID, event); err != nil {
			h.logger.Error("failed to publish order placed event", "error", err, "order_id", event.OrderID)
		}
	}

	h.logger.Info("order placed", "order_id", orderID.Hex(), "items", len(order.Items))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"order_id": orderID.Hex(),
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
