package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/masalabox/orderflow/internal/orders"
	"github.com/masalabox/orderflow/internal/pricing"
	"github.com/masalabox/orderflow/internal/validation"
)

func registerOrderRoutes(g *gin.RouterGroup, cfg HandlerConfig, v *validatorv10.Validate) {
	g.POST("/orders/create", func(c *gin.Context) {
		var req validation.DirectOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if req.PaymentMethod == orders.MethodCash && req.FinalTotal < pricing.CashMinimum {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("Cash on delivery is available only for orders of ₹%.0f and above", pricing.CashMinimum),
			})
			return
		}

		payment := orders.PaymentInfo{
			Method: req.PaymentMethod,
			Status: orders.PaymentPending,
		}
		order := orders.BuildOrder(req.CheckoutInput(), payment, time.Now())

		if err := cfg.Orders.Create(c.Request.Context(), order); err != nil {
			internalError(c, err, "Failed to create order")
			return
		}

		publishPlaced(c, cfg, order)

		c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
	})

	g.GET("/orders/user/:userId", func(c *gin.Context) {
		list, err := cfg.Orders.ListByUser(c.Request.Context(), c.Param("userId"))
		if err != nil {
			internalError(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": list})
	})

	g.GET("/orders/:orderId", func(c *gin.Context) {
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

	g.PUT("/orders/:orderId/status", func(c *gin.Context) {
		updateOrderStatus(c, cfg, v)
	})
}

// updateOrderStatus is shared between the customer PUT route and the admin
// PATCH route.
func updateOrderStatus(c *gin.Context, cfg HandlerConfig, v *validatorv10.Validate) {
	var req validation.StatusUpdateRequest
	if err := validation.BindAndValidate(c, &req, v); err != nil {
		return
	}

	order, err := cfg.Orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order status"})
		case errors.Is(err, orders.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		default:
			internalError(c, err, "Failed to update order status")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated", "order": order})
}
