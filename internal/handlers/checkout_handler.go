package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/awe-electronics/storefront/internal/checkout"
	"github.com/awe-electronics/storefront/internal/validation"
)

// registerCheckoutRoutes registers checkout and order history routes.
func registerCheckoutRoutes(r *gin.Engine, reg *registry, v *validatorv10.Validate) {
	r.GET("/checkout/:userId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"state":    st.checkout.State(),
			"discount": st.checkout.Discount(),
			"total":    st.checkout.Total(),
		}})
	})

	r.POST("/checkout/:userId/promo", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		var req validation.PromoRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		discount, err := st.checkout.ApplyPromo(req.Code)
		if errors.Is(err, checkout.ErrInvalidPromo) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_promo"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"discount": discount, "total": st.checkout.Total()})
	})

	r.POST("/checkout/:userId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		var req validation.CheckoutRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		if req.PromoCode != "" {
			if _, err := st.checkout.ApplyPromo(req.PromoCode); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_promo"})
				return
			}
		}

		order, err := st.checkout.Submit(c.Request.Context(), req.Customer)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		// the draft served its purpose; let the session shop again
		st.checkout.Reset()
		c.JSON(http.StatusCreated, gin.H{"data": order})
	})

	r.GET("/orders/:userId", func(c *gin.Context) {
		st, ok := reg.user(c)
		if !ok {
			return
		}
		list, err := st.history.ListOrders(c.Request.Context(), st.session.UserID)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list, "count": len(list)})
	})
}
