package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyroute/internal/domain"
	"skyroute/internal/http/middleware"
	"skyroute/internal/services"
)

// CreatePaymentIntent validates the checkout body and delegates to the
// payment processor. Error payloads mirror the processor's own message,
// code and type so the client SDK can react to them.
func (h *Handlers) CreatePaymentIntent(c *gin.Context) {
	var req services.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	svc := services.PaymentService{
		RequestID:    middleware.GetRequestID(c),
		CreateIntent: h.CreateIntent,
	}
	result, err := svc.CreateBookingIntent(req)
	if err != nil {
		respondPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func respondPaymentError(c *gin.Context, err error) {
	var missing services.MissingAddressFieldsError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         missing.Error(),
			"missingFields": missing.Fields,
		})
		return
	}

	var validation domain.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg})
		return
	}

	var processor services.ProcessorError
	if errors.As(err, &processor) {
		status := processor.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		payload := gin.H{"error": processor.Error()}
		if processor.Code != "" {
			payload["code"] = processor.Code
		}
		if processor.Type != "" {
			payload["type"] = processor.Type
		}
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "An unknown error occurred"})
}
