// Package checkout drives the order submission flow:
//
//	Editing -> Submitting -> Confirmed
//	                      -> Failed (resubmittable, cart untouched)
//
// One order-creation request per submission, no automatic retry.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/awe-electronics/storefront/internal/cart"
	"github.com/awe-electronics/storefront/internal/identity"
	"github.com/awe-electronics/storefront/internal/orders"
	"github.com/awe-electronics/storefront/internal/validation"
)

// The single static promo code. Matching is trimmed and case-insensitive;
// this is a placeholder rule, not a pricing engine.
const (
	promoCode = "DISCOUNT10"
	promoRate = 0.10
)

var (
	// ErrInvalidPromo signals a non-empty code that is not the promo code.
	// The discount has been reset to zero when it is returned.
	ErrInvalidPromo = errors.New("invalid promo code")

	// ErrNotEditing is returned when Submit is called while a submission
	// is in flight or the checkout is already confirmed.
	ErrNotEditing = errors.New("checkout is not in an editable state")
)

// State is the checkout's position in the submission flow.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// OrderPlacer issues the single order-creation request.
// Implementations: backend.Client (remote) and orders.FileHistory (local).
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID string, customer orders.Customer, discount float64) (*orders.Order, error)
}

// Checkout is one user's order draft.
type Checkout struct {
	session  identity.Session
	cart     *cart.Service
	placer   OrderPlacer
	validate *validatorv10.Validate

	state    State
	discount float64
}

// New creates a checkout draft in the Editing state.
func New(session identity.Session, cartSvc *cart.Service, placer OrderPlacer) *Checkout {
	return &Checkout{
		session:  session,
		cart:     cartSvc,
		placer:   placer,
		validate: validation.New(),
		state:    StateEditing,
	}
}

// State returns the current checkout state.
func (c *Checkout) State() State {
	return c.state
}

// Discount returns the currently applied discount amount.
func (c *Checkout) Discount() float64 {
	return c.discount
}

// Total is the cart total minus the applied discount.
func (c *Checkout) Total() float64 {
	return c.cart.Total() - c.discount
}

// ApplyPromo checks the code against the static promo. A match applies a
// fixed 10% discount on the current cart total; any other non-empty code
// resets the discount to zero and returns ErrInvalidPromo. An empty code
// just clears the discount.
func (c *Checkout) ApplyPromo(code string) (float64, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		c.discount = 0
		return 0, nil
	}
	if !strings.EqualFold(code, promoCode) {
		c.discount = 0
		return 0, ErrInvalidPromo
	}
	c.discount = c.cart.Total() * promoRate
	return c.discount, nil
}

// Submit validates the contact fields and issues the order-creation
// request. Validation failures block locally: no network call is made.
// On success the checkout is Confirmed and the cart cleared; on failure
// it moves to Failed with the cart untouched, and a corrected draft may
// be submitted again. The distinguished empty-cart rejection surfaces
// as orders.ErrEmptyCart.
func (c *Checkout) Submit(ctx context.Context, customer orders.Customer) (*orders.Order, error) {
	if c.state != StateEditing && c.state != StateFailed {
		return nil, ErrNotEditing
	}

	if strings.TrimSpace(customer.Name) == "" {
		customer.Name = c.session.UserID
	}
	if err := c.validate.Struct(validation.CheckoutRequest{Customer: customer}); err != nil {
		return nil, fmt.Errorf("checkout fields: %w", err)
	}

	c.state = StateSubmitting
	order, err := c.placer.PlaceOrder(ctx, c.session.UserID, customer, c.discount)
	if err != nil {
		// failure is terminal for this submission, no automatic retry
		c.state = StateFailed
		return nil, fmt.Errorf("place order: %w", err)
	}

	c.state = StateConfirmed
	if err := c.cart.Clear(ctx); err != nil {
		// the order is placed; the cart re-syncs on next load
		slog.Warn("cart clear after order failed", "user", c.session.UserID, "error", err)
	}
	return order, nil
}

// Reset starts a fresh draft after a confirmed order.
func (c *Checkout) Reset() {
	c.state = StateEditing
	c.discount = 0
}
