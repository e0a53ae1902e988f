package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/masalabox/orderflow/internal/events"
	"github.com/masalabox/orderflow/internal/orders"
	"github.com/masalabox/orderflow/internal/payments"
	"github.com/masalabox/orderflow/internal/pricing"
	"github.com/masalabox/orderflow/internal/validation"
)

func registerPaymentRoutes(g *gin.RouterGroup, cfg HandlerConfig, v *validatorv10.Validate) {
	g.POST("/payments/create-order", func(c *gin.Context) {
		var req validation.CreatePaymentOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		order, err := cfg.Gateway.CreateOrder(c.Request.Context(), req.Amount, req.Currency, req.Receipt)
		if err != nil {
			if errors.Is(err, payments.ErrUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Payment gateway not configured"})
				return
			}
			log.Error().Err(err).Msg("payments: create gateway order failed")
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to create payment order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order, "key_id": cfg.Gateway.KeyID()})
	})

	g.POST("/payments/verify", func(c *gin.Context) {
		var req validation.VerifyPaymentRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if !cfg.Gateway.Available() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Payment gateway not configured"})
			return
		}

		valid := payments.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, cfg.Gateway.KeySecret())
		if !valid {
			cfg.Metrics.PaymentVerificationFailed(c.Request.Context())
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment signature"})
			return
		}

		if req.OrderDetails == nil {
			c.JSON(http.StatusOK, gin.H{
				"success":    true,
				"verified":   true,
				"payment_id": req.RazorpayPaymentID,
				"order_id":   req.RazorpayOrderID,
			})
			return
		}

		payment := orders.PaymentInfo{
			Method:         orders.MethodOnline,
			PaymentID:      req.RazorpayPaymentID,
			GatewayOrderID: req.RazorpayOrderID,
			Status:         orders.PaymentPaid,
		}
		order := orders.BuildOrder(req.OrderDetails.CheckoutInput(), payment, time.Now())

		if err := cfg.Orders.Create(c.Request.Context(), order); err != nil {
			// the payment is already captured; surfacing a failure here would
			// make the customer pay twice
			log.Error().Err(err).
				Str("payment_id", req.RazorpayPaymentID).
				Str("gateway_order_id", req.RazorpayOrderID).
				Msg("payments: order persistence failed after capture")
			c.JSON(http.StatusOK, gin.H{
				"success":    true,
				"verified":   true,
				"orderSaved": false,
				"payment_id": req.RazorpayPaymentID,
				"order_id":   req.RazorpayOrderID,
				"message":    "Payment verified but the order could not be saved. Please contact support with your payment id.",
			})
			return
		}

		publishPlaced(c, cfg, order)

		c.JSON(http.StatusOK, gin.H{
			"success":               true,
			"verified":              true,
			"orderSaved":            true,
			"payment_id":            req.RazorpayPaymentID,
			"order_id":              req.RazorpayOrderID,
			"orderId":               order.OrderID,
			"estimatedDeliveryTime": order.EstimatedDeliveryTime,
		})
	})

	g.POST("/payments/cash", func(c *gin.Context) {
		var req validation.CashPaymentRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if req.OrderDetails.FinalTotal < pricing.CashMinimum {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("Cash on delivery is available only for orders of ₹%.0f and above", pricing.CashMinimum),
			})
			return
		}

		payment := orders.PaymentInfo{
			Method: orders.MethodCash,
			Status: orders.PaymentPending,
		}
		order := orders.BuildOrder(req.OrderDetails.CheckoutInput(), payment, time.Now())

		if err := cfg.Orders.Create(c.Request.Context(), order); err != nil {
			internalError(c, err, "Failed to place order")
			return
		}

		publishPlaced(c, cfg, order)

		c.JSON(http.StatusCreated, gin.H{
			"success":               true,
			"order_id":              order.OrderID,
			"order":                 order,
			"paymentMethod":         orders.MethodCash,
			"estimatedDeliveryTime": order.EstimatedDeliveryTime,
		})
	})

	g.GET("/payments/status/:paymentId", func(c *gin.Context) {
		payment, err := cfg.Gateway.FetchPayment(c.Request.Context(), c.Param("paymentId"))
		if err != nil {
			if errors.Is(err, payments.ErrUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Payment gateway not configured"})
				return
			}
			log.Error().Err(err).Msg("payments: fetch payment failed")
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to fetch payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
	})
}

// publishPlaced emits the order.placed event and records metrics. Both are
// best-effort and never affect the response.
func publishPlaced(c *gin.Context, cfg HandlerConfig, order *orders.Order) {
	cfg.Publisher.PublishOrderPlaced(c.Request.Context(), events.OrderPlaced{
		OrderID:    order.OrderID,
		UserID:     order.UserID,
		Phone:      order.CustomerInfo.Phone,
		FinalTotal: order.Pricing.FinalTotal,
		Method:     order.PaymentInfo.Method,
		PlacedAt:   order.CreatedAt,
	})
	cfg.Metrics.OrderPlaced(c.Request.Context(), order.PaymentInfo.Method, order.Pricing.FinalTotal)
}
