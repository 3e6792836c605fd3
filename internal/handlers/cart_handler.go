package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/awe-electronics/storefront/internal/cart"
	"github.com/awe-electronics/storefront/internal/validation"
)

func cartBody(svc *cart.Service) gin.H {
	return gin.H{
		"items": svc.Lines(),
		"count": svc.Count(),
		"total": svc.Total(),
	}
}

// registerCartRoutes registers the per-user cart routes.
func registerCartRoutes(r *gin.Engine, reg *registry, v *validatorv10.Validate) {
	r.GET("/cart/:userId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cartBody(st.cart)})
	})

	r.POST("/cart/:userId/items", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		var req validation.AddItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		p, found := reg.deps.Store.GetByID(c.Request.Context(), req.ProductID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		if err := st.cart.Add(c.Request.Context(), p, req.Quantity); err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cartBody(st.cart)})
	})

	r.DELETE("/cart/:userId/items/:productId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		removed, err := st.cart.Remove(c.Request.Context(), c.Param("productId"))
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cartBody(st.cart), "removed": removed})
	})

	r.DELETE("/cart/:userId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		if err := st.cart.Clear(c.Request.Context()); err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cartBody(st.cart)})
	})
}
