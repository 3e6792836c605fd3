// Package orders defines the order records produced by checkout and
// returned by the order history API.
package orders

import (
	"time"

	"github.com/awe-electronics/storefront/internal/cart"
)

// Customer carries the contact fields collected during checkout.
// Email, phone and address are mandatory before submission; notes are
// free text.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Order is a placed order: a snapshot of the cart lines at submission
// time plus the applied discount and computed totals. Orders are owned by
// the backend once submitted and immutable afterwards.
type Order struct {
	OrderID    string      `json:"order_id"`
	UserID     string      `json:"user_id"`
	Customer   Customer    `json:"customer"`
	Items      []cart.Line `json:"items"`
	TotalPrice float64     `json:"total_price"`
	Discount   float64     `json:"discount"`
	FinalTotal float64     `json:"final_total"`
	PlacedAt   time.Time   `json:"placed_at"`
}
