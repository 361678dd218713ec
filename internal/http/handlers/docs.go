package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skyroute/internal/http/middleware"
	"skyroute/internal/services"
)

func (h *Handlers) docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		RequestID: middleware.GetRequestID(c),
		Rand:      h.DocsRand,
	}
}

func (h *Handlers) confirmedBooking(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid booking index", err)
		return 0, false
	}
	return index, true
}

// TicketsPDF streams the boarding passes for a confirmed booking.
func (h *Handlers) TicketsPDF(c *gin.Context) {
	index, ok := h.confirmedBooking(c)
	if !ok {
		return
	}
	booking, found := h.Bookings.BookingAt(index)
	if !found {
		RespondError(c, http.StatusNotFound, "booking not found", nil)
		return
	}

	pdfBytes, filename, err := h.docsService(c).GenerateTickets(booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// BaggageTagsPDF streams the baggage tags for a confirmed booking.
func (h *Handlers) BaggageTagsPDF(c *gin.Context) {
	index, ok := h.confirmedBooking(c)
	if !ok {
		return
	}
	booking, found := h.Bookings.BookingAt(index)
	if !found {
		RespondError(c, http.StatusNotFound, "booking not found", nil)
		return
	}

	pdfBytes, filename, err := h.docsService(c).GenerateBaggageTags(booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// TicketsPrint serves the printable boarding-pass page, the
// open-window-and-print export path.
func (h *Handlers) TicketsPrint(c *gin.Context) {
	index, ok := h.confirmedBooking(c)
	if !ok {
		return
	}
	booking, found := h.Bookings.BookingAt(index)
	if !found {
		RespondError(c, http.StatusNotFound, "booking not found", nil)
		return
	}

	html, err := h.docsService(c).RenderTicketsHTML(booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// BaggageTagsPrint serves the printable baggage-tag page.
func (h *Handlers) BaggageTagsPrint(c *gin.Context) {
	index, ok := h.confirmedBooking(c)
	if !ok {
		return
	}
	booking, found := h.Bookings.BookingAt(index)
	if !found {
		RespondError(c, http.StatusNotFound, "booking not found", nil)
		return
	}

	html, err := h.docsService(c).RenderBaggageTagsHTML(booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
