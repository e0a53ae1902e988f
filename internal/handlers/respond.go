package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// internalError logs the underlying error and returns a generic 500. Store
// and gateway errors are never echoed to clients.
func internalError(c *gin.Context, err error, message string) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("handlers: internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
}
