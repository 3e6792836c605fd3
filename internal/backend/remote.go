package backend

import (
	"context"
	"errors"

	"github.com/awe-electronics/storefront/internal/cart"
	"github.com/awe-electronics/storefront/internal/catalog"
)

// RemoteCartBackend adapts Client to cart.Backend for a single user.
type RemoteCartBackend struct {
	client *Client
	userID string
}

// NewRemoteCartBackend binds the cart API to one user.
func NewRemoteCartBackend(client *Client, userID string) *RemoteCartBackend {
	return &RemoteCartBackend{client: client, userID: userID}
}

func (b *RemoteCartBackend) Load(ctx context.Context) ([]cart.Line, error) {
	return b.client.GetCart(ctx, b.userID)
}

func (b *RemoteCartBackend) Add(ctx context.Context, line cart.Line) error {
	return b.client.AddCartLine(ctx, b.userID, line)
}

func (b *RemoteCartBackend) Remove(ctx context.Context, productID string) error {
	err := b.client.RemoveCartLine(ctx, b.userID, productID)
	if errors.Is(err, ErrNotFound) {
		// already gone server-side: the line is removed either way
		return nil
	}
	return err
}

func (b *RemoteCartBackend) Clear(ctx context.Context) error {
	return b.client.ClearCart(ctx, b.userID)
}

// RemoteWishlistBackend adapts Client to wishlist.Backend for a single user.
type RemoteWishlistBackend struct {
	client *Client
	userID string
}

// NewRemoteWishlistBackend binds the wishlist API to one user.
func NewRemoteWishlistBackend(client *Client, userID string) *RemoteWishlistBackend {
	return &RemoteWishlistBackend{client: client, userID: userID}
}

func (b *RemoteWishlistBackend) Load(ctx context.Context) ([]catalog.Product, error) {
	return b.client.GetWishlist(ctx, b.userID)
}

func (b *RemoteWishlistBackend) Add(ctx context.Context, p catalog.Product) error {
	return b.client.AddWishlistProduct(ctx, b.userID, p)
}

func (b *RemoteWishlistBackend) Remove(ctx context.Context, p catalog.Product) error {
	return b.client.RemoveWishlistProduct(ctx, b.userID, p)
}

func (b *RemoteWishlistBackend) Clear(ctx context.Context) error {
	return b.client.ClearWishlist(ctx, b.userID)
}
