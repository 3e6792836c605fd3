package catalog

import (
	"context"
	"errors"
	"testing"
)

type fakeSource struct {
	products []Product
	err      error
	calls    int
}

func (f *fakeSource) FetchProducts(ctx context.Context) ([]Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func TestStore_CachesAfterFirstSuccessfulFetch(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	store := NewStore(src)
	ctx := context.Background()

	if got := store.GetAll(ctx); len(got) != 5 {
		t.Fatalf("GetAll returned %d products, want 5", len(got))
	}
	store.GetAll(ctx)
	store.Categories(ctx)

	if src.calls != 1 {
		t.Fatalf("source fetched %d times, want 1", src.calls)
	}
}

func TestStore_RetriesWhileEmpty(t *testing.T) {
	src := &fakeSource{err: errors.New("backend down")}
	store := NewStore(src)
	ctx := context.Background()

	if got := store.GetAll(ctx); len(got) != 0 {
		t.Fatalf("GetAll during outage returned %d products, want 0", len(got))
	}

	// backend recovers
	src.err = nil
	src.products = sampleProducts()

	if got := store.GetAll(ctx); len(got) != 5 {
		t.Fatalf("GetAll after recovery returned %d products, want 5", len(got))
	}
	if src.calls != 2 {
		t.Fatalf("source fetched %d times, want 2", src.calls)
	}
}

func TestStore_GetByID(t *testing.T) {
	store := NewStore(&fakeSource{products: sampleProducts()})
	ctx := context.Background()

	p, ok := store.GetByID(ctx, "p3")
	if !ok || p.Name != "4K Monitor" {
		t.Fatalf("GetByID(p3) = %+v, %v", p, ok)
	}
	if _, ok := store.GetByID(ctx, "nope"); ok {
		t.Fatal("GetByID(nope) reported found")
	}
}

func TestStore_CategoriesFirstSeenOrder(t *testing.T) {
	store := NewStore(&fakeSource{products: sampleProducts()})

	got := store.Categories(context.Background())
	want := []string{"Accessories", "Displays", "Desk"}
	if len(got) != len(want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories = %v, want %v", got, want)
		}
	}
}

func TestStore_PriceRangeFloorIsZero(t *testing.T) {
	store := NewStore(&fakeSource{products: sampleProducts()})

	min, max := store.PriceRange(context.Background())
	if min != 0 {
		t.Fatalf("min = %v, want 0", min)
	}
	if max != 349.00 {
		t.Fatalf("max = %v, want 349", max)
	}
}
