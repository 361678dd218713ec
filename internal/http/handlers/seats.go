package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SeatMap returns a freshly generated cabin grid. Occupancy re-rolls on
// every call; the map is display data, not inventory.
func (h *Handlers) SeatMap(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"seatMap": h.Seats.Generate()})
}
