package checkout

import (
	"context"
	"errors"
	"testing"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/awe-electronics/storefront/internal/cart"
	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/identity"
	"github.com/awe-electronics/storefront/internal/orders"
)

type nopCartBackend struct{}

func (nopCartBackend) Load(context.Context) ([]cart.Line, error) { return nil, nil }
func (nopCartBackend) Add(context.Context, cart.Line) error      { return nil }
func (nopCartBackend) Remove(context.Context, string) error      { return nil }
func (nopCartBackend) Clear(context.Context) error               { return nil }

type mockPlacer struct {
	calls    int
	err      error
	lastDisc float64
}

func (m *mockPlacer) PlaceOrder(ctx context.Context, userID string, customer orders.Customer, discount float64) (*orders.Order, error) {
	m.calls++
	m.lastDisc = discount
	if m.err != nil {
		return nil, m.err
	}
	return &orders.Order{OrderID: "ord-1", UserID: userID, Customer: customer, Discount: discount}, nil
}

var validCustomer = orders.Customer{
	Email:   "maria@example.com",
	Phone:   "555-0101",
	Address: "1 Main St",
}

func newCheckout(t *testing.T, placer OrderPlacer) (*Checkout, *cart.Service) {
	t.Helper()
	session, err := identity.NewSession("maria")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	cartSvc := cart.NewService(nopCartBackend{})
	return New(session, cartSvc, placer), cartSvc
}

func fillCart(t *testing.T, cartSvc *cart.Service, total float64) {
	t.Helper()
	p := catalog.Product{ID: "p1", Name: "Thing", Price: total, Stock: 1}
	if err := cartSvc.Add(context.Background(), p, 1); err != nil {
		t.Fatalf("fill cart: %v", err)
	}
}

func TestApplyPromo(t *testing.T) {
	co, cartSvc := newCheckout(t, &mockPlacer{})
	fillCart(t, cartSvc, 100)

	// matching is trimmed and case-insensitive
	discount, err := co.ApplyPromo("  discount10 ")
	if err != nil {
		t.Fatalf("valid promo: %v", err)
	}
	if discount != 10 {
		t.Fatalf("discount = %v, want 10", discount)
	}
	if co.Total() != 90 {
		t.Fatalf("total = %v, want 90", co.Total())
	}

	// a bad code resets the applied discount
	if _, err := co.ApplyPromo("XYZ"); !errors.Is(err, ErrInvalidPromo) {
		t.Fatalf("invalid promo err = %v", err)
	}
	if co.Discount() != 0 || co.Total() != 100 {
		t.Fatalf("after invalid promo: discount=%v total=%v", co.Discount(), co.Total())
	}

	// empty just clears
	if _, err := co.ApplyPromo(""); err != nil {
		t.Fatalf("empty promo: %v", err)
	}
	if co.Discount() != 0 {
		t.Fatalf("discount after empty code = %v", co.Discount())
	}
}

func TestSubmit_ValidationBlocksWithoutPlacerCall(t *testing.T) {
	placer := &mockPlacer{}
	co, cartSvc := newCheckout(t, placer)
	fillCart(t, cartSvc, 50)

	_, err := co.Submit(context.Background(), orders.Customer{Email: "maria@example.com"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("error type: %v", err)
	}
	if placer.calls != 0 {
		t.Fatal("placer called despite validation failure")
	}
	if co.State() != StateEditing {
		t.Fatalf("state = %v, want editing", co.State())
	}
}

func TestSubmit_PrefillsNameFromSession(t *testing.T) {
	placer := &mockPlacer{}
	co, cartSvc := newCheckout(t, placer)
	fillCart(t, cartSvc, 50)

	order, err := co.Submit(context.Background(), validCustomer)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.Customer.Name != "maria" {
		t.Fatalf("customer name = %q, want session name", order.Customer.Name)
	}
}

func TestSubmit_SuccessConfirmsAndClearsCart(t *testing.T) {
	placer := &mockPlacer{}
	co, cartSvc := newCheckout(t, placer)
	fillCart(t, cartSvc, 100)

	if _, err := co.ApplyPromo("DISCOUNT10"); err != nil {
		t.Fatalf("promo: %v", err)
	}

	order, err := co.Submit(context.Background(), validCustomer)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order == nil || placer.calls != 1 {
		t.Fatalf("order=%v calls=%d", order, placer.calls)
	}
	if placer.lastDisc != 10 {
		t.Fatalf("discount passed to placer = %v, want 10", placer.lastDisc)
	}
	if co.State() != StateConfirmed {
		t.Fatalf("state = %v, want confirmed", co.State())
	}
	if cartSvc.Count() != 0 {
		t.Fatal("cart not cleared after confirmed order")
	}

	// a confirmed draft rejects another submission until reset
	if _, err := co.Submit(context.Background(), validCustomer); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("resubmit err = %v", err)
	}
	co.Reset()
	if co.State() != StateEditing || co.Discount() != 0 {
		t.Fatalf("after reset: state=%v discount=%v", co.State(), co.Discount())
	}
}

func TestSubmit_FailureKeepsCartAndAllowsRetry(t *testing.T) {
	placer := &mockPlacer{err: errors.New("backend down")}
	co, cartSvc := newCheckout(t, placer)
	fillCart(t, cartSvc, 100)

	if _, err := co.Submit(context.Background(), validCustomer); err == nil {
		t.Fatal("expected failure")
	}
	if co.State() != StateFailed {
		t.Fatalf("state = %v, want failed", co.State())
	}
	if cartSvc.Count() != 1 {
		t.Fatal("cart mutated by failed submission")
	}

	// the corrected draft can go again
	placer.err = nil
	if _, err := co.Submit(context.Background(), validCustomer); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if co.State() != StateConfirmed {
		t.Fatalf("state after retry = %v", co.State())
	}
}

func TestSubmit_EmptyCartRejectionIsDistinguished(t *testing.T) {
	placer := &mockPlacer{err: orders.ErrEmptyCart}
	co, _ := newCheckout(t, placer)

	_, err := co.Submit(context.Background(), validCustomer)
	if !errors.Is(err, orders.ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}
