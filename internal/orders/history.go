package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/awe-electronics/storefront/internal/cart"
	"github.com/awe-electronics/storefront/internal/localstore"
)

// ErrEmptyCart is the distinguished rejection for an order placed with no
// items. It is surfaced to the user separately from generic failures.
var ErrEmptyCart = errors.New("cart is empty")

const historyDoc = "orders"

// FileHistory persists placed orders to a single JSON document, the local
// counterpart of the backend's order store.
type FileHistory struct {
	store   *localstore.Store
	nowFunc func() time.Time
}

// NewFileHistory creates a file-backed order history.
func NewFileHistory(store *localstore.Store) *FileHistory {
	return &FileHistory{store: store, nowFunc: time.Now}
}

// ListOrders returns the user's past orders, newest first.
func (h *FileHistory) ListOrders(_ context.Context, userID string) ([]Order, error) {
	var all []Order
	if _, err := h.store.Read(historyDoc, &all); err != nil {
		return nil, fmt.Errorf("read order history: %w", err)
	}

	var out []Order
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == userID {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// PlaceOrder snapshots the user's persisted cart into a new order,
// appends it to the history and empties the cart document. An empty cart
// yields ErrEmptyCart and no order.
func (h *FileHistory) PlaceOrder(ctx context.Context, userID string, customer Customer, discount float64) (*Order, error) {
	cartDoc := fmt.Sprintf("carts/%s_cart", userID)

	var lines []cart.Line
	if _, err := h.store.Read(cartDoc, &lines); err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := Order{
		OrderID:  uuid.NewString(),
		UserID:   userID,
		Customer: customer,
		Items:    lines,
		Discount: discount,
		PlacedAt: h.nowFunc(),
	}
	for _, l := range lines {
		order.TotalPrice += l.Price * float64(l.Quantity)
	}
	order.FinalTotal = order.TotalPrice - discount

	var all []Order
	if _, err := h.store.Read(historyDoc, &all); err != nil {
		return nil, fmt.Errorf("read order history: %w", err)
	}
	all = append(all, order)
	if err := h.store.Write(historyDoc, all); err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}

	// the cart snapshot now belongs to the order
	if err := h.store.Write(cartDoc, []any{}); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return &order, nil
}
