// Package handlers exposes the storefront over HTTP. State that spans
// requests (cart, wishlist, checkout draft) lives in a per-user registry
// so browser clients can stay stateless.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/awe-electronics/storefront/internal/backend"
	"github.com/awe-electronics/storefront/internal/cart"
	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/checkout"
	"github.com/awe-electronics/storefront/internal/config"
	"github.com/awe-electronics/storefront/internal/identity"
	"github.com/awe-electronics/storefront/internal/localstore"
	"github.com/awe-electronics/storefront/internal/orders"
	"github.com/awe-electronics/storefront/internal/validation"
	"github.com/awe-electronics/storefront/internal/wishlist"
)

// OrderHistory places orders and lists past ones. Satisfied by
// backend.Client and orders.FileHistory.
type OrderHistory interface {
	checkout.OrderPlacer
	ListOrders(ctx context.Context, userID string) ([]orders.Order, error)
}

// Deps groups dependencies for the storefront routes.
// Client is required in remote mode, Files in local mode.
type Deps struct {
	Store  *catalog.Store
	Client *backend.Client
	Files  *localstore.Store
	Mode   string
}

// RegisterRoutes registers all storefront routes.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	v := validation.New()
	reg := newRegistry(deps)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/session", func(c *gin.Context) {
		var req validation.SessionRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		st, err := reg.get(c.Request.Context(), req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_name", "msg": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": st.session})
	})

	registerProductRoutes(r, deps)
	registerCartRoutes(r, reg, v)
	registerWishlistRoutes(r, reg, v)
	registerCheckoutRoutes(r, reg, v)
}

// userState is one shopper's cross-request state.
type userState struct {
	session  identity.Session
	cart     *cart.Service
	wishlist *wishlist.Service
	checkout *checkout.Checkout
	history  OrderHistory
}

type registry struct {
	deps Deps

	mu    sync.Mutex
	users map[string]*userState
}

func newRegistry(deps Deps) *registry {
	return &registry{deps: deps, users: make(map[string]*userState)}
}

// get returns the user's state, constructing and hydrating it on first
// use. Hydration failures are logged, not fatal: the user starts from an
// empty cart and the next mutation re-syncs.
func (g *registry) get(ctx context.Context, userID string) (*userState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if st, ok := g.users[userID]; ok {
		return st, nil
	}

	session, err := identity.NewSession(userID)
	if err != nil {
		return nil, err
	}

	var (
		cartBackend     cart.Backend
		wishlistBackend wishlist.Backend
		history         OrderHistory
	)
	if g.deps.Mode == config.BackendLocal {
		cartBackend = cart.NewFileBackend(g.deps.Files, session.UserID)
		wishlistBackend = wishlist.NewFileBackend(g.deps.Files, session.UserID)
		history = orders.NewFileHistory(g.deps.Files)
	} else {
		cartBackend = backend.NewRemoteCartBackend(g.deps.Client, session.UserID)
		wishlistBackend = backend.NewRemoteWishlistBackend(g.deps.Client, session.UserID)
		history = g.deps.Client
	}

	st := &userState{
		session:  session,
		cart:     cart.NewService(cartBackend),
		wishlist: wishlist.NewService(wishlistBackend),
		history:  history,
	}
	st.checkout = checkout.New(session, st.cart, history)

	if err := st.cart.Load(ctx); err != nil {
		slog.Warn("cart hydration failed", "user", session.UserID, "error", err)
	}
	if err := st.wishlist.Load(ctx); err != nil {
		slog.Warn("wishlist hydration failed", "user", session.UserID, "error", err)
	}

	g.users[session.UserID] = st
	return st, nil
}

// user resolves the :userId path param to per-user state, writing the
// error response itself on failure.
func (g *registry) user(c *gin.Context) (*userState, bool) {
	st, err := g.get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_user", "msg": err.Error()})
		return nil, false
	}
	return st, true
}

// writeBackendError maps service failures to responses, keeping the
// distinguished cases apart from generic upstream trouble.
func writeBackendError(c *gin.Context, err error) {
	var ve validatorv10.ValidationErrors
	switch {
	case errors.As(err, &ve):
		fields := map[string]string{}
		for _, fe := range ve {
			fields[fe.StructNamespace()] = fe.Error()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": fields})
	case errors.Is(err, orders.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart_empty"})
	case errors.Is(err, checkout.ErrNotEditing):
		c.JSON(http.StatusConflict, gin.H{"error": "checkout_busy"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend_unavailable", "detail": err.Error()})
	}
}
