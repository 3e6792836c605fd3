package cart

import (
	"context"
	"testing"

	"github.com/awe-electronics/storefront/internal/localstore"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	backend := NewFileBackend(localstore.New(t.TempDir()), "maria")
	ctx := context.Background()

	// fresh user has an empty cart, not an error
	lines, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("load fresh: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("fresh cart has %d lines", len(lines))
	}

	line := Line{ProductID: "p1", Name: "Mouse", Price: 25, Quantity: 2, TotalPrice: 50}
	if err := backend.Add(ctx, line); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := backend.Add(ctx, line); err != nil {
		t.Fatalf("add again: %v", err)
	}

	lines, err = backend.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want merged single line", len(lines))
	}
	if lines[0].Quantity != 4 || lines[0].TotalPrice != 100 {
		t.Fatalf("merged line: %+v", lines[0])
	}
}

func TestFileBackend_RemoveAndClear(t *testing.T) {
	backend := NewFileBackend(localstore.New(t.TempDir()), "maria")
	ctx := context.Background()

	if err := backend.Add(ctx, Line{ProductID: "p1", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := backend.Add(ctx, Line{ProductID: "p2", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := backend.Remove(ctx, "p1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// removing something absent is fine
	if err := backend.Remove(ctx, "ghost"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}

	lines, _ := backend.Load(ctx)
	if len(lines) != 1 || lines[0].ProductID != "p2" {
		t.Fatalf("after remove: %+v", lines)
	}

	if err := backend.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	lines, _ = backend.Load(ctx)
	if len(lines) != 0 {
		t.Fatalf("after clear: %+v", lines)
	}
}

func TestFileBackend_UsersAreIsolated(t *testing.T) {
	store := localstore.New(t.TempDir())
	ctx := context.Background()

	maria := NewFileBackend(store, "maria")
	jonas := NewFileBackend(store, "jonas")

	if err := maria.Add(ctx, Line{ProductID: "p1", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines, err := jonas.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("jonas sees maria's cart: %+v", lines)
	}
}
