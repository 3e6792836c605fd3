package validation

import (
	"testing"

	"github.com/awe-electronics/storefront/internal/orders"
)

func TestCheckoutRequest_Valid(t *testing.T) {
	v := New()
	req := CheckoutRequest{Customer: orders.Customer{
		Name:    "Maria",
		Email:   "maria@example.com",
		Phone:   "555-0101",
		Address: "1 Main St",
	}}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid request, got: %v", err)
	}
}

func TestCheckoutRequest_NameNotRequired(t *testing.T) {
	v := New()
	req := CheckoutRequest{Customer: orders.Customer{
		Email:   "maria@example.com",
		Phone:   "555-0101",
		Address: "1 Main St",
	}}
	if err := v.Struct(req); err != nil {
		t.Fatalf("name should be optional, got: %v", err)
	}
}

func TestCheckoutRequest_BlankContactFields(t *testing.T) {
	v := New()

	// whitespace does not satisfy the contact fields
	req := CheckoutRequest{Customer: orders.Customer{
		Email:   "  ",
		Phone:   "\t",
		Address: "",
	}}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation failure for blank contact fields")
	}
}

func TestAddItemRequest(t *testing.T) {
	v := New()

	if err := v.Struct(AddItemRequest{ProductID: "p1", Quantity: 2}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	// zero quantity is allowed, handlers default it to one
	if err := v.Struct(AddItemRequest{ProductID: "p1"}); err != nil {
		t.Fatalf("omitted quantity rejected: %v", err)
	}
	if err := v.Struct(AddItemRequest{ProductID: "p1", Quantity: -1}); err == nil {
		t.Fatal("negative quantity accepted")
	}
	if err := v.Struct(AddItemRequest{Quantity: 1}); err == nil {
		t.Fatal("missing product id accepted")
	}
}

func TestSessionRequest(t *testing.T) {
	v := New()

	if err := v.Struct(SessionRequest{Name: "maria"}); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}
	if err := v.Struct(SessionRequest{}); err == nil {
		t.Fatal("missing name accepted")
	}
}
