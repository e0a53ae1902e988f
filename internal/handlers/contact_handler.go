package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/masalabox/orderflow/internal/contact"
	"github.com/masalabox/orderflow/internal/validation"
)

func registerContactRoutes(g *gin.RouterGroup, cfg HandlerConfig, v *validatorv10.Validate) {
	g.POST("/contact", func(c *gin.Context) {
		var req validation.ContactRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		msg := &contact.Message{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Body:    req.Message,
		}
		if err := cfg.Contact.Create(c.Request.Context(), msg); err != nil {
			if errors.Is(err, contact.ErrInvalidSubject) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid subject"})
				return
			}
			internalError(c, err, "Failed to submit message")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "id": msg.MessageID})
	})

	g.GET("/contact", func(c *gin.Context) {
		list, total, err := cfg.Contact.List(c.Request.Context(), c.Query("status"), intQuery(c, "page"), intQuery(c, "limit"))
		if err != nil {
			internalError(c, err, "Failed to fetch messages")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "messages": list, "total": total})
	})

	g.GET("/contact/stats/summary", func(c *gin.Context) {
		stats, err := cfg.Contact.StatsSummary(c.Request.Context())
		if err != nil {
			internalError(c, err, "Failed to compute stats")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	})

	g.GET("/contact/:id", func(c *gin.Context) {
		msg, err := cfg.Contact.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, contact.ErrMessageNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Message not found"})
				return
			}
			internalError(c, err, "Failed to fetch message")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
	})

	g.PATCH("/contact/:id/status", func(c *gin.Context) {
		var req validation.StatusUpdateRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		msg, err := cfg.Contact.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.AdminNotes)
		if err != nil {
			switch {
			case errors.Is(err, contact.ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid message status"})
			case errors.Is(err, contact.ErrMessageNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Message not found"})
			default:
				internalError(c, err, "Failed to update message")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
	})
}
