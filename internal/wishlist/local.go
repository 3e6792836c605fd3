package wishlist

import (
	"context"
	"fmt"

	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/localstore"
)

// FileBackend persists the wishlist to a per-user JSON document, used
// when no wishlist API is reachable.
type FileBackend struct {
	store  *localstore.Store
	userID string
}

// NewFileBackend creates a file-backed wishlist store for one user.
func NewFileBackend(store *localstore.Store, userID string) *FileBackend {
	return &FileBackend{store: store, userID: userID}
}

func (b *FileBackend) doc() string {
	return fmt.Sprintf("wishlists/%s_wishlist", b.userID)
}

func (b *FileBackend) read() ([]catalog.Product, error) {
	var products []catalog.Product
	if _, err := b.store.Read(b.doc(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Load returns the persisted wishlist, empty when none exists yet.
func (b *FileBackend) Load(_ context.Context) ([]catalog.Product, error) {
	return b.read()
}

// Add appends the product unless it is already present.
func (b *FileBackend) Add(_ context.Context, p catalog.Product) error {
	products, err := b.read()
	if err != nil {
		return err
	}
	for _, existing := range products {
		if existing.ID == p.ID {
			return nil
		}
	}
	return b.store.Write(b.doc(), append(products, p))
}

// Remove drops the product if present.
func (b *FileBackend) Remove(_ context.Context, p catalog.Product) error {
	products, err := b.read()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, existing := range products {
		if existing.ID != p.ID {
			kept = append(kept, existing)
		}
	}
	return b.store.Write(b.doc(), kept)
}

// Clear empties the persisted wishlist.
func (b *FileBackend) Clear(_ context.Context) error {
	return b.store.Write(b.doc(), []catalog.Product{})
}
