package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/awe-electronics/storefront/internal/catalog"
)

const defaultPageSize = 9

// registerProductRoutes registers the read-only catalog routes.
func registerProductRoutes(r *gin.Engine, deps Deps) {
	r.GET("/products", func(c *gin.Context) {
		ctx := c.Request.Context()

		filter := catalog.Filter{
			Search:   c.Query("q"),
			Category: c.Query("category"),
		}
		if raw := c.Query("categories"); raw != "" {
			for _, cat := range strings.Split(raw, ",") {
				if cat = strings.TrimSpace(cat); cat != "" {
					filter.Categories = append(filter.Categories, cat)
				}
			}
		}
		var perr error
		filter.MinPrice, perr = floatParam(c, "minPrice", perr)
		filter.MaxPrice, perr = floatParam(c, "maxPrice", perr)
		filter.MinRating, perr = floatParam(c, "minRating", perr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query_param", "msg": perr.Error()})
			return
		}

		page := catalog.Page{
			Number: intParam(c, "page", 1),
			Size:   intParam(c, "pageSize", defaultPageSize),
		}
		if page.Number < 1 || page.Size < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query_param", "msg": "page and pageSize must be positive"})
			return
		}

		result := deps.Store.Query(ctx, filter, catalog.Sort(c.Query("sort")), &page)
		c.JSON(http.StatusOK, gin.H{
			"data": result.Products,
			"meta": gin.H{
				"page":        page.Number,
				"limit":       page.Size,
				"total":       result.TotalCount,
				"total_pages": result.TotalPages,
			},
		})
	})

	r.GET("/products/:id", func(c *gin.Context) {
		p, ok := deps.Store.GetByID(c.Request.Context(), c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": p})
	})

	// facets for building the filter sidebar
	r.GET("/filters", func(c *gin.Context) {
		ctx := c.Request.Context()
		min, max := deps.Store.PriceRange(ctx)
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"categories": deps.Store.Categories(ctx),
				"priceRange": gin.H{"min": min, "max": max},
			},
		})
	})
}

func floatParam(c *gin.Context, name string, prev error) (*float64, error) {
	if prev != nil {
		return nil, prev
	}
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func intParam(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}
