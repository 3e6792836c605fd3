// Package cart holds the per-user shopping cart state and keeps it in
// sync with a persistence backend. Mutations are all-or-nothing from the
// caller's perspective: if the backend rejects a change, the in-memory
// state stays untouched and no change event fires.
package cart

import (
	"context"
	"fmt"

	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/pubsub"
)

// Backend persists cart lines. Implementations: RemoteBackend (cart API)
// and FileBackend (local JSON files); the deployment picks one.
type Backend interface {
	Load(ctx context.Context) ([]Line, error)
	Add(ctx context.Context, line Line) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
}

// Service is the cart state for one user. It is the sole mutator of its
// line collection; the UI goes through Add/Remove/Clear only.
type Service struct {
	backend Backend
	lines   []Line
	events  pubsub.Broker[Event]
}

// NewService creates an empty cart bound to a backend. Call Load to
// hydrate previously persisted lines.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// Subscribe registers a listener for cart change events and returns its
// cancel func. Delivery is synchronous, in registration order, after the
// mutation's persistence step has been confirmed.
func (s *Service) Subscribe(fn func(Event)) func() {
	return s.events.Subscribe(fn)
}

// Load replaces the in-memory lines with the backend's persisted state.
func (s *Service) Load(ctx context.Context) error {
	lines, err := s.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	s.lines = lines
	return nil
}

// Add puts quantity units of the product in the cart, merging into an
// existing line when present. The backend must accept the change before
// local state mutates or the added event fires.
func (s *Service) Add(ctx context.Context, p catalog.Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("invalid quantity: %d", quantity)
	}

	line := Line{
		ProductID:  p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Quantity:   quantity,
		TotalPrice: p.Price * float64(quantity),
		Image:      p.Image,
	}
	if err := s.backend.Add(ctx, line); err != nil {
		return fmt.Errorf("persist cart add: %w", err)
	}

	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += quantity
			s.lines[i].TotalPrice = float64(s.lines[i].Quantity) * s.lines[i].Price
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}

	s.events.Publish(Event{Type: EventAdded, ProductID: p.ID})
	return nil
}

// Remove deletes the product's line. It reports false without touching
// the backend or firing an event when the product is not in the cart.
func (s *Service) Remove(ctx context.Context, productID string) (bool, error) {
	idx := -1
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	if err := s.backend.Remove(ctx, productID); err != nil {
		return false, fmt.Errorf("persist cart remove: %w", err)
	}

	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	s.events.Publish(Event{Type: EventRemoved, ProductID: productID})
	return true, nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("persist cart clear: %w", err)
	}
	s.lines = nil
	s.events.Publish(Event{Type: EventCleared})
	return nil
}

// Lines returns a copy of the current cart lines.
func (s *Service) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count is the sum of quantities across all lines.
func (s *Service) Count() int {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Total is the sum of price times quantity across all lines.
func (s *Service) Total() float64 {
	total := 0.0
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}
