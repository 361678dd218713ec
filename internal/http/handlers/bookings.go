package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skyroute/internal/domain/models"
	"skyroute/internal/flights"
	"skyroute/internal/http/middleware"
	"skyroute/internal/seatmap"
	"skyroute/internal/services"
	"skyroute/internal/utils"
)

// CreateBooking validates the search input and replaces the draft.
func (h *Handlers) CreateBooking(c *gin.Context) {
	var details models.BookingDetails
	if !BindJSONOrError(c, &details) {
		return
	}
	if err := details.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	draft := h.Bookings.SetBooking(details)
	utils.LogEvent(middleware.GetRequestID(c), "booking", "set",
		fmt.Sprintf("route=%s-%s passengers=%d", draft.From, draft.To, len(draft.Passengers)))
	c.JSON(http.StatusCreated, gin.H{"currentBooking": draft})
}

// CurrentBooking returns the draft or 404 when none exists.
func (h *Handlers) CurrentBooking(c *gin.Context) {
	draft, ok := h.Bookings.Current()
	if !ok {
		RespondError(c, http.StatusNotFound, "no active booking draft", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentBooking": draft})
}

// UpdateCurrentBooking merges a typed patch into the draft: flight
// selection, bag count, date changes or seat-annotated passengers.
func (h *Handlers) UpdateCurrentBooking(c *gin.Context) {
	var patch models.BookingPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	if err := patch.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}
	// Flight selection must reference the catalog; the stored details
	// come from there, not from the client body.
	if patch.FlightDetails != nil {
		flight, ok := flights.ByID(patch.FlightDetails.ID)
		if !ok {
			RespondError(c, http.StatusNotFound, "flight not found", nil)
			return
		}
		patch.FlightDetails = &flight
	}

	updated, ok := h.Bookings.UpdateBooking(patch)
	if !ok {
		RespondError(c, http.StatusConflict, "no active booking draft", nil)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "booking", "update", "draft patched")
	c.JSON(http.StatusOK, gin.H{"currentBooking": updated})
}

type assignSeatRequest struct {
	PassengerID int    `json:"passengerId"`
	SeatID      string `json:"seatId"`
}

// AssignSeat places a canonical seat on a draft passenger. Seat type and
// price are derived from the seat position server-side.
func (h *Handlers) AssignSeat(c *gin.Context) {
	var req assignSeatRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	seat, err := seatmap.SeatFromID(req.SeatID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	updated, err := h.Bookings.AssignSeat(req.PassengerID, seat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "booking", "assign_seat",
		fmt.Sprintf("passenger=%d seat=%s", req.PassengerID, seat.ID))
	c.JSON(http.StatusOK, gin.H{"currentBooking": updated})
}

// QuoteCurrentBooking prices the draft for the payment page. A flight
// must be selected first; reaching payment without one is the same
// precondition failure the client guards against.
func (h *Handlers) QuoteCurrentBooking(c *gin.Context) {
	draft, ok := h.Bookings.Current()
	if !ok {
		RespondError(c, http.StatusConflict, "no active booking draft", nil)
		return
	}
	if draft.FlightDetails == nil {
		RespondError(c, http.StatusConflict, "no flight selected", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": services.QuoteBooking(draft)})
}

// ConfirmBooking moves the draft into history. The store treats a
// missing draft as a silent no-op; the API surfaces it as a conflict so
// a double confirmation cannot append twice.
func (h *Handlers) ConfirmBooking(c *gin.Context) {
	confirmed, ok := h.Bookings.ConfirmBooking()
	if !ok {
		RespondError(c, http.StatusConflict, "no active booking draft", nil)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "booking", "confirm",
		fmt.Sprintf("route=%s-%s", confirmed.From, confirmed.To))
	c.JSON(http.StatusOK, gin.H{"booking": confirmed})
}

// BookingHistory lists confirmed bookings in insertion order.
func (h *Handlers) BookingHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": h.Bookings.History()})
}

// RemoveBooking deletes a history entry by position. Out-of-range
// indexes are silent no-ops.
func (h *Handlers) RemoveBooking(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid booking index", err)
		return
	}
	if h.Bookings.RemoveBooking(index) {
		utils.LogEvent(middleware.GetRequestID(c), "booking", "remove", "index="+c.Param("index"))
	}
	c.Status(http.StatusNoContent)
}
