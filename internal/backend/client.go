// Package backend is the REST client for the remote catalog/order API.
// All persistence the storefront does not keep locally goes through here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/awe-electronics/storefront/internal/cart"
	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/orders"
)

// ErrNotFound indicates the backend did not know the referenced record.
var ErrNotFound = errors.New("not found")

// StatusError is returned for any non-success HTTP status. It is
// retryable from the caller's perspective and never fatal.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d for %s", e.Status, e.Path)
}

// Client talks to the storefront backend. The zero http.Client is used
// when none is supplied.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Path: path}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Path: path}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// FetchProducts lists the full catalog. It implements catalog.Source.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetCart returns the user's persisted cart lines.
func (c *Client) GetCart(ctx context.Context, userID string) ([]cart.Line, error) {
	var lines []cart.Line
	if err := c.getJSON(ctx, "/cart/"+url.PathEscape(userID), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AddCartLine merges the line into the user's cart.
func (c *Client) AddCartLine(ctx context.Context, userID string, line cart.Line) error {
	var resp statusResponse
	if err := c.postJSON(ctx, "/cart/"+url.PathEscape(userID)+"/add", line, &resp); err != nil {
		return err
	}
	return resp.check("added")
}

// RemoveCartLine removes the product's line from the user's cart.
// ErrNotFound is returned when the backend had no such line.
func (c *Client) RemoveCartLine(ctx context.Context, userID, productID string) error {
	body := map[string]string{"productId": productID}
	var resp statusResponse
	if err := c.postJSON(ctx, "/cart/"+url.PathEscape(userID)+"/remove", body, &resp); err != nil {
		return err
	}
	if resp.Status == "not_found" {
		return ErrNotFound
	}
	return resp.check("removed")
}

// ClearCart empties the user's cart.
func (c *Client) ClearCart(ctx context.Context, userID string) error {
	var resp statusResponse
	if err := c.postJSON(ctx, "/cart/"+url.PathEscape(userID)+"/clear", nil, &resp); err != nil {
		return err
	}
	return resp.check("cleared")
}

// GetWishlist returns the user's persisted wishlist products.
func (c *Client) GetWishlist(ctx context.Context, userID string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.getJSON(ctx, "/wishlist/"+url.PathEscape(userID), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddWishlistProduct adds the product to the user's wishlist.
func (c *Client) AddWishlistProduct(ctx context.Context, userID string, p catalog.Product) error {
	var resp statusResponse
	if err := c.postJSON(ctx, "/wishlist/"+url.PathEscape(userID)+"/add", p, &resp); err != nil {
		return err
	}
	return resp.check("added")
}

// RemoveWishlistProduct removes the product from the user's wishlist.
func (c *Client) RemoveWishlistProduct(ctx context.Context, userID string, p catalog.Product) error {
	var resp statusResponse
	if err := c.postJSON(ctx, "/wishlist/"+url.PathEscape(userID)+"/remove", p, &resp); err != nil {
		return err
	}
	return resp.check("removed")
}

// ClearWishlist empties the user's wishlist.
func (c *Client) ClearWishlist(ctx context.Context, userID string) error {
	var resp statusResponse
	if err := c.postJSON(ctx, "/wishlist/"+url.PathEscape(userID)+"/clear", nil, &resp); err != nil {
		return err
	}
	return resp.check("cleared")
}

// PlaceOrder submits the checkout: the backend snapshots the server-side
// cart into an order. The distinguished "cart empty" response maps to
// orders.ErrEmptyCart.
func (c *Client) PlaceOrder(ctx context.Context, userID string, customer orders.Customer, discount float64) (*orders.Order, error) {
	body := map[string]any{
		"customer": customer,
		"discount": discount,
	}

	var raw json.RawMessage
	if err := c.postJSON(ctx, "/order/"+url.PathEscape(userID), body, &raw); err != nil {
		return nil, err
	}

	// a rejected order comes back as {"status": "cart empty"}
	var resp statusResponse
	if err := json.Unmarshal(raw, &resp); err == nil && resp.Status == "cart empty" {
		return nil, orders.ErrEmptyCart
	}

	var order orders.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &order, nil
}

// ListOrders returns the user's order history, newest first.
func (c *Client) ListOrders(ctx context.Context, userID string) ([]orders.Order, error) {
	var out []orders.Order
	if err := c.getJSON(ctx, "/orders/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// statusResponse is the backend's generic mutation acknowledgment.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (r statusResponse) check(want string) error {
	if r.Status != want {
		return fmt.Errorf("unexpected backend status %q", r.Status)
	}
	return nil
}
