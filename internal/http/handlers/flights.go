package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
	"skyroute/internal/flights"
)

// Destinations lists the selectable airports for the search form.
func (h *Handlers) Destinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": flights.Destinations()})
}

// Flights lists available departures. When search parameters are
// present the itinerary is validated first, mirroring the search form.
func (h *Handlers) Flights(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" && to == "" {
		c.JSON(http.StatusOK, gin.H{"flights": flights.List()})
		return
	}

	passengers := 1
	if raw := c.Query("passengers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "passengers", Msg: "must be a number"})
			return
		}
		passengers = n
	}
	tripType := domain.TripType(c.DefaultQuery("tripType", string(domain.TripOneWay)))

	details := models.BookingDetails{
		From:          from,
		To:            to,
		DepartureDate: c.Query("departureDate"),
		ReturnDate:    c.Query("returnDate"),
		TripType:      tripType,
		Passengers:    passengers,
	}
	result, err := flights.Search(details)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": result})
}
