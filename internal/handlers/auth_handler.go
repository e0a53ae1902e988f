package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/masalabox/orderflow/internal/users"
	"github.com/masalabox/orderflow/internal/validation"
)

func registerAuthRoutes(g *gin.RouterGroup, cfg HandlerConfig, v *validatorv10.Validate) {
	g.POST("/auth", func(c *gin.Context) {
		var req validation.AuthRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		user, created, err := cfg.Users.Authenticate(c.Request.Context(), req.Username, req.Password, req.Mobile)
		if err != nil {
			if errors.Is(err, users.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
				return
			}
			internalError(c, err, "Authentication failed")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, gin.H{"success": true, "created": created, "user": user})
	})

	g.POST("/otp/generate", func(c *gin.Context) {
		var req validation.OTPGenerateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		if err := cfg.Users.GenerateOTP(c.Request.Context(), req.Mobile); err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No account found for this mobile number"})
				return
			}
			internalError(c, err, "Failed to send OTP")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent"})
	})

	g.POST("/otp/verify", func(c *gin.Context) {
		var req validation.OTPVerifyRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		user, err := cfg.Users.VerifyOTP(c.Request.Context(), req.Mobile, req.OTP)
		if err != nil {
			switch {
			case errors.Is(err, users.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No account found for this mobile number"})
			case errors.Is(err, users.ErrNoOTP):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No OTP was requested for this number"})
			case errors.Is(err, users.ErrOTPExpired):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP has expired, please request a new one"})
			case errors.Is(err, users.ErrInvalidOTP):
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid OTP"})
			default:
				internalError(c, err, "Failed to verify OTP")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	})
}
