package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/validation"
)

// registerWishlistRoutes registers the per-user wishlist routes.
func registerWishlistRoutes(r *gin.Engine, reg *registry, v *validatorv10.Validate) {
	r.GET("/wishlist/:userId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"items": st.wishlist.Products(),
			"count": st.wishlist.Count(),
		}})
	})

	r.POST("/wishlist/:userId/items", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		var req validation.ItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		p, found := reg.deps.Store.GetByID(c.Request.Context(), req.ProductID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		added, err := st.wishlist.Add(c.Request.Context(), p)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"added": added, "count": st.wishlist.Count()})
	})

	r.POST("/wishlist/:userId/toggle", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		var req validation.ItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		p, found := reg.deps.Store.GetByID(c.Request.Context(), req.ProductID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		inWishlist, err := st.wishlist.Toggle(c.Request.Context(), p)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": inWishlist, "count": st.wishlist.Count()})
	})

	r.DELETE("/wishlist/:userId/items/:productId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		// removing something the catalog no longer carries must still work
		p := catalog.Product{ID: c.Param("productId")}
		for _, existing := range st.wishlist.Products() {
			if existing.ID == p.ID {
				p = existing
				break
			}
		}
		removed, err := st.wishlist.Remove(c.Request.Context(), p)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed, "count": st.wishlist.Count()})
	})

	r.DELETE("/wishlist/:userId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		if err := st.wishlist.Clear(c.Request.Context()); err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": 0})
	})
}
