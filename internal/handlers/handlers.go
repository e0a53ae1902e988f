package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masalabox/orderflow/internal/contact"
	"github.com/masalabox/orderflow/internal/coupons"
	"github.com/masalabox/orderflow/internal/events"
	"github.com/masalabox/orderflow/internal/metrics"
	"github.com/masalabox/orderflow/internal/orders"
	"github.com/masalabox/orderflow/internal/payments"
	"github.com/masalabox/orderflow/internal/products"
	"github.com/masalabox/orderflow/internal/users"
	"github.com/masalabox/orderflow/internal/validation"
)

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	Coupons      *coupons.Service
	CouponsStore *coupons.Store
	Orders       *orders.Store
	Users        *users.Service
	Products     *products.Store
	Contact      *contact.Store
	Gateway      *payments.Client
	Publisher    *events.Publisher
	Metrics      *metrics.Recorder
}

// RegisterRoutes wires every API route group onto the engine.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	registerCouponRoutes(api, cfg, v)
	registerPaymentRoutes(api, cfg, v)
	registerOrderRoutes(api, cfg, v)
	registerAuthRoutes(api, cfg, v)
	registerAdminRoutes(api, cfg, v)
	registerContactRoutes(api, cfg, v)
	registerProductRoutes(api, cfg)
}
