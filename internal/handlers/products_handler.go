package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masalabox/orderflow/internal/products"
)

func registerProductRoutes(g *gin.RouterGroup, cfg HandlerConfig) {
	g.GET("/products", func(c *gin.Context) {
		list, err := cfg.Products.List(c.Request.Context())
		if err != nil {
			internalError(c, err, "Failed to fetch products")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": list})
	})

	g.POST("/products/addProducts", func(c *gin.Context) {
		var items []products.Product
		if err := c.ShouldBindJSON(&items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No products provided"})
			return
		}

		stored, err := cfg.Products.PutBatch(c.Request.Context(), items)
		if err != nil {
			internalError(c, err, "Failed to store products")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "count": len(stored), "products": stored})
	})
}
