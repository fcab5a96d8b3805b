package domain

import "time"

// OrderPlacedEvent is published after checkout commits an order.
type OrderPlacedEvent struct {
	EventID  string      `json:"event_id"`
	OrderID  string      `json:"order_id"`
	Email    string      `json:"email"`
	Items    []OrderItem `json:"items"`
	Subtotal float64     `json:"subtotal"`
	PlacedAt time.Time   `json:"placed_at"`
}
