package checkout

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
	"github.com/gramtop961/gilded-gaze-backend/internal/inventory"
)

// StockStore is the inventory surface the engine commits against.
// DecrementIfAvailable must be atomic: it deducts only while enough stock
// remains and reports inventory.ErrInsufficientStock otherwise.
type StockStore interface {
	Quantity(ctx context.Context, productID domain.ProductID) (int, bool, error)
	DecrementIfAvailable(ctx context.Context, productID domain.ProductID, quantity int) error
	Restock(ctx context.Context, productID domain.ProductID, quantity int) error
}

// OrderStore persists committed orders.
type OrderStore interface {
	Insert(ctx context.Context, order *domain.Order) (domain.OrderID, error)
}

// InsufficientStockError identifies the offending line item by its title
// snapshot.
type InsufficientStockError struct {
	Title string
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock for " + e.Title
}

// Engine places orders in two phases: validate stock for every line item,
// then decrement per item and persist the order. The commit decrements are
// conditional, so a checkout racing this one on the same product loses
// cleanly instead of driving quantity negative; when that happens the
// engine restocks the items it already deducted and fails the whole order.
type Engine struct {
	stock  StockStore
	orders OrderStore
	logger *slog.Logger
}

func NewEngine(stock StockStore, orders OrderStore, logger *slog.Logger) *Engine {
	return &Engine{
		stock:  stock,
		orders: orders,
		logger: logger,
	}
}

// PlaceOrder either commits the order, decrementing stock for every item
// and returning the new order id, or fails with no net effect on inventory.
func (e *Engine) PlaceOrder(ctx context.Context, order *domain.Order) (domain.OrderID, error) {
	ids := make([]domain.ProductID, len(order.Items))
	for i, item := range order.Items {
		id, err := domain.ParseProductID(item.ProductID)
		if err != nil {
			return domain.OrderID{}, err
		}
		ids[i] = id
	}

	// Validation phase: every line item is checked before any mutation, so
	// an order that is doomed to fail never half-applies.
	for i, item := range order.Items {
		quantity, found, err := e.stock.Quantity(ctx, ids[i])
		if err != nil {
			return domain.OrderID{}, err
		}
		if !found || quantity < item.Quantity {
			return domain.OrderID{}, &InsufficientStockError{Title: item.Title}
		}
	}

	// Commit phase. A conditional decrement can still lose to a concurrent
	// checkout that drained the product after validation; restore whatever
	// was already deducted and fail the order.
	for i, item := range order.Items {
		if err := e.stock.DecrementIfAvailable(ctx, ids[i], item.Quantity); err != nil {
			e.restock(ctx, order.Items[:i], ids[:i])
			if errors.Is(err, inventory.ErrInsufficientStock) {
				return domain.OrderID{}, &InsufficientStockError{Title: item.Title}
			}
			return domain.OrderID{}, err
		}
	}

	order.CreatedAt = time.Now().UTC()
	orderID, err := e.orders.Insert(ctx, order)
	if err != nil {
		e.restock(ctx, order.Items, ids)
		return domain.OrderID{}, err
	}

	return orderID, nil
}

func (e *Engine) restock(ctx context.Context, items []domain.OrderItem, ids []domain.ProductID) {
	for i := range items {
		if err := e.stock.Restock(ctx, ids[i], items[i].Quantity); err != nil {
			e.logger.Error("failed to restock after aborted checkout",
				"error", err, "product_id", ids[i].Hex(), "quantity", items[i].Quantity)
		}
	}
}
