package catalog

import (
	"context"
	"log/slog"
	"sync"
)

// Source provides the full product list, typically the remote catalog API.
type Source interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Store caches the catalog for the lifetime of a session.
// The first successful fetch is cached; while the cache is empty every
// accessor retries the fetch, so callers must treat an empty result as
// "catalog unavailable" rather than "no products match".
type Store struct {
	source Source

	mu       sync.Mutex
	products []Product
}

// NewStore creates a catalog store backed by the given source.
func NewStore(source Source) *Store {
	return &Store{source: source}
}

// load fetches products if the cache is empty. A failed load leaves the
// cache empty so the next call retries; it never fails the caller.
func (s *Store) load(ctx context.Context) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) == 0 {
		products, err := s.source.FetchProducts(ctx)
		if err != nil {
			slog.Error("catalog fetch failed", "error", err)
			return nil
		}
		s.products = products
	}
	return s.products
}

// GetAll returns every product in the catalog, in catalog order.
func (s *Store) GetAll(ctx context.Context) []Product {
	products := s.load(ctx)
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// GetByID looks up a single product. The second return is false when the
// id is unknown; callers handle the absence rather than an error.
func (s *Store) GetByID(ctx context.Context, id string) (Product, bool) {
	for _, p := range s.load(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories returns the distinct category labels in first-seen order.
func (s *Store) Categories(ctx context.Context) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.load(ctx) {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// PriceRange returns the lowest and highest catalog prices. The floor is
// clamped to zero, so min is min(0, lowest observed price). An empty
// catalog yields (0, 0).
func (s *Store) PriceRange(ctx context.Context) (min, max float64) {
	for _, p := range s.load(ctx) {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// Query runs the query engine over the cached catalog.
func (s *Store) Query(ctx context.Context, filter Filter, sortBy Sort, page *Page) Result {
	return Query(s.load(ctx), filter, sortBy, page)
}
