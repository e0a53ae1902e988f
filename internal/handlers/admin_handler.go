package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/masalabox/orderflow/internal/orders"
	"github.com/masalabox/orderflow/internal/users"
	"github.com/masalabox/orderflow/internal/validation"
)

func registerAdminRoutes(g *gin.RouterGroup, cfg HandlerConfig, v *validatorv10.Validate) {
	admin := g.Group("/admin")

	admin.POST("/login", func(c *gin.Context) {
		var req validation.AdminLoginRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		user, err := cfg.Users.AdminLogin(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, users.ErrUnauthorized):
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access denied"})
			case errors.Is(err, users.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
			default:
				internalError(c, err, "Login failed")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	})

	admin.GET("/orders", func(c *gin.Context) {
		filter := orders.ListFilter{
			Status: c.Query("status"),
			Page:   intQuery(c, "page"),
			Limit:  intQuery(c, "limit"),
		}
		if from, ok := dateQuery(c, "from"); ok {
			filter.From = from
		}
		if to, ok := dateQuery(c, "to"); ok {
			filter.To = to
		}

		list, total, err := cfg.Orders.List(c.Request.Context(), filter)
		if err != nil {
			internalError(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orders":  list,
			"total":   total,
		})
	})

	admin.GET("/orders/:orderId", func(c *gin.Context) {
		order, err := cfg.Orders.Get(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			if errors.Is(err, orders.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			internalError(c, err, "Failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	})

	admin.PATCH("/orders/:orderId/status", func(c *gin.Context) {
		updateOrderStatus(c, cfg, v)
	})

	admin.GET("/analytics", func(c *gin.Context) {
		all, _, err := cfg.Orders.List(c.Request.Context(), orders.ListFilter{Limit: 1 << 30})
		if err != nil {
			internalError(c, err, "Failed to compute analytics")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "analytics": orders.ComputeAnalytics(all, time.Now())})
	})

}

func intQuery(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}

func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
