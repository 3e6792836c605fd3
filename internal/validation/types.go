package validation

import "github.com/awe-electronics/storefront/internal/orders"

// CheckoutRequest is the payload for POST /checkout/{userId}.
// Name may arrive empty; it is prefilled from the session identity.
type CheckoutRequest struct {
	Customer  orders.Customer `json:"customer" validate:"required"`
	PromoCode string          `json:"promoCode,omitempty"`
}

// AddItemRequest is the payload for cart add calls.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// ItemRequest references a single product (cart remove, wishlist ops).
type ItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// PromoRequest carries a promo code to validate.
type PromoRequest struct {
	Code string `json:"code"`
}

// SessionRequest starts a shopping session from a display name.
type SessionRequest struct {
	Name string `json:"name" validate:"required"`
}
