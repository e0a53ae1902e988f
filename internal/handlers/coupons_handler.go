package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/masalabox/orderflow/internal/coupons"
	"github.com/masalabox/orderflow/internal/validation"
)

func registerCouponRoutes(g *gin.RouterGroup, cfg HandlerConfig, v *validatorv10.Validate) {
	g.GET("/coupons", func(c *gin.Context) {
		list, err := cfg.CouponsStore.List(c.Request.Context())
		if err != nil {
			internalError(c, err, "failed to fetch coupons")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "coupons": list})
	})

	g.GET("/coupons/active", func(c *gin.Context) {
		list, err := cfg.CouponsStore.ListActive(c.Request.Context(), time.Now())
		if err != nil {
			internalError(c, err, "failed to fetch coupons")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "coupons": list})
	})

	g.GET("/coupons/code/:code", func(c *gin.Context) {
		coupon, err := cfg.CouponsStore.Get(c.Request.Context(), c.Param("code"))
		if err != nil {
			internalError(c, err, "failed to fetch coupon")
			return
		}
		if coupon == nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "coupon": coupon})
	})

	g.POST("/coupons/validate", func(c *gin.Context) {
		var req validation.ValidateCouponRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		res, err := cfg.Coupons.Validate(c.Request.Context(), req.Code, req.OrderAmount)
		if err != nil {
			switch {
			case errors.Is(err, coupons.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Invalid coupon code"})
			case errors.Is(err, coupons.ErrExpired):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Coupon has expired"})
			case errors.Is(err, coupons.ErrBelowMinimum):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			default:
				internalError(c, err, "failed to validate coupon")
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"valid":          true,
			"coupon":         res.Coupon,
			"discountAmount": res.DiscountAmount,
			"finalAmount":    res.FinalAmount,
		})
	})
}
