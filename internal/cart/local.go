package cart

import (
	"context"
	"fmt"

	"github.com/awe-electronics/storefront/internal/localstore"
)

// FileBackend persists cart lines to a per-user JSON document. It is the
// fallback used when no cart API is reachable.
type FileBackend struct {
	store  *localstore.Store
	userID string
}

// NewFileBackend creates a file-backed cart store for one user.
func NewFileBackend(store *localstore.Store, userID string) *FileBackend {
	return &FileBackend{store: store, userID: userID}
}

func (b *FileBackend) doc() string {
	return fmt.Sprintf("carts/%s_cart", b.userID)
}

func (b *FileBackend) read() ([]Line, error) {
	var lines []Line
	if _, err := b.store.Read(b.doc(), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Load returns the persisted cart lines, empty when none exist yet.
func (b *FileBackend) Load(_ context.Context) ([]Line, error) {
	return b.read()
}

// Add merges the line into the persisted cart, incrementing quantity for
// an already present product.
func (b *FileBackend) Add(_ context.Context, line Line) error {
	lines, err := b.read()
	if err != nil {
		return err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			lines[i].TotalPrice = float64(lines[i].Quantity) * lines[i].Price
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	return b.store.Write(b.doc(), lines)
}

// Remove drops the product's line if present; removing an absent product
// is not an error.
func (b *FileBackend) Remove(_ context.Context, productID string) error {
	lines, err := b.read()
	if err != nil {
		return err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	return b.store.Write(b.doc(), kept)
}

// Clear empties the persisted cart.
func (b *FileBackend) Clear(_ context.Context) error {
	return b.store.Write(b.doc(), []Line{})
}
