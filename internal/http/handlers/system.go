package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is a liveness probe.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Config exposes the client-side processor key; the secret key never
// leaves the server.
func (h *Handlers) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"publishableKey": h.Env.StripePublishableKey,
	})
}
