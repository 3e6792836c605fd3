// Package wishlist holds the per-user wishlist state: a set of products
// keyed by product id, synced to a persistence backend with the same
// all-or-nothing contract as the cart.
package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/pubsub"
)

// EventType identifies a wishlist mutation.
type EventType string

const (
	EventAdded   EventType = "added"
	EventRemoved EventType = "removed"
	EventCleared EventType = "cleared"
)

// Event is published once per successful wishlist mutation. ProductID is
// empty for cleared events.
type Event struct {
	Type      EventType
	ProductID string
}

// Entry is one wishlist member with the time it was added.
type Entry struct {
	Product catalog.Product
	AddedAt time.Time
}

// Backend persists the wishlist product set.
type Backend interface {
	Load(ctx context.Context) ([]catalog.Product, error)
	Add(ctx context.Context, p catalog.Product) error
	Remove(ctx context.Context, p catalog.Product) error
	Clear(ctx context.Context) error
}

// Service is the wishlist state for one user. Operations are keyed by
// product and resolved to ids internally; set semantics hold throughout
// (at most one entry per product).
type Service struct {
	backend Backend
	entries []Entry
	events  pubsub.Broker[Event]
	nowFunc func() time.Time
}

// NewService creates an empty wishlist bound to a backend.
func NewService(backend Backend) *Service {
	return &Service{backend: backend, nowFunc: time.Now}
}

// Subscribe registers a listener for wishlist change events and returns
// its cancel func. Delivery is synchronous, in registration order.
func (s *Service) Subscribe(fn func(Event)) func() {
	return s.events.Subscribe(fn)
}

// Load replaces the in-memory set with the backend's persisted state.
func (s *Service) Load(ctx context.Context) error {
	products, err := s.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("load wishlist: %w", err)
	}

	now := s.nowFunc()
	entries := make([]Entry, 0, len(products))
	for _, p := range products {
		entries = append(entries, Entry{Product: p, AddedAt: now})
	}
	s.entries = entries
	return nil
}

// Add inserts the product. It reports false without a backend call when
// the product is already a member.
func (s *Service) Add(ctx context.Context, p catalog.Product) (bool, error) {
	if s.Contains(p) {
		return false, nil
	}

	if err := s.backend.Add(ctx, p); err != nil {
		return false, fmt.Errorf("persist wishlist add: %w", err)
	}

	s.entries = append(s.entries, Entry{Product: p, AddedAt: s.nowFunc()})
	s.events.Publish(Event{Type: EventAdded, ProductID: p.ID})
	return true, nil
}

// Remove deletes the product's entry, reporting whether one existed.
// The removed event fires only when an entry was actually dropped.
func (s *Service) Remove(ctx context.Context, p catalog.Product) (bool, error) {
	idx := -1
	for i := range s.entries {
		if s.entries[i].Product.ID == p.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	if err := s.backend.Remove(ctx, p); err != nil {
		return false, fmt.Errorf("persist wishlist remove: %w", err)
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.events.Publish(Event{Type: EventRemoved, ProductID: p.ID})
	return true, nil
}

// Toggle adds the product if absent and removes it if present. The return
// is the resulting membership state: true means the product is now listed.
func (s *Service) Toggle(ctx context.Context, p catalog.Product) (bool, error) {
	if s.Contains(p) {
		if _, err := s.Remove(ctx, p); err != nil {
			return true, err
		}
		return false, nil
	}
	if _, err := s.Add(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

// Clear empties the wishlist.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("persist wishlist clear: %w", err)
	}
	s.entries = nil
	s.events.Publish(Event{Type: EventCleared})
	return nil
}

// Contains reports whether the product is in the wishlist.
func (s *Service) Contains(p catalog.Product) bool {
	for _, e := range s.entries {
		if e.Product.ID == p.ID {
			return true
		}
	}
	return false
}

// Products returns the wishlist products in insertion order.
func (s *Service) Products() []catalog.Product {
	out := make([]catalog.Product, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Product)
	}
	return out
}

// Count returns the number of wishlist entries.
func (s *Service) Count() int {
	return len(s.entries)
}
