package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"skyroute/internal/domain"
	"skyroute/internal/utils"
)

// CustomerAddress carries the billing address required for export
// compliance. line2 is the only optional field.
type CustomerAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// PaymentIntentRequest is the create-payment-intent body. Amount is in
// rupees and converted to paise before reaching the processor.
type PaymentIntentRequest struct {
	Amount          float64         `json:"amount"`
	CustomerName    string          `json:"customerName"`
	CustomerAddress CustomerAddress `json:"customerAddress"`
}

// PaymentIntentResult is returned to the client SDK to complete payment.
type PaymentIntentResult struct {
	ClientSecret string `json:"clientSecret"`
	ID           string `json:"id"`
}

// MissingAddressFieldsError lists which required address fields were
// absent, in a machine-readable form.
type MissingAddressFieldsError struct {
	Fields []string
}

func (e MissingAddressFieldsError) Error() string {
	return "Missing required address fields: " + strings.Join(e.Fields, ", ")
}

// ProcessorError surfaces the payment processor's own failure details
// together with its reported status code.
type ProcessorError struct {
	Message string
	Code    string
	Type    string
	Status  int
}

func (e ProcessorError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Failed to create payment intent"
}

// PaymentService validates checkout input and creates payment intents.
// CreateIntent is injectable so tests never hit the network.
type PaymentService struct {
	RequestID    string
	CreateIntent func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func (s PaymentService) create(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if s.CreateIntent != nil {
		return s.CreateIntent(params)
	}
	return paymentintent.New(params)
}

// CreateBookingIntent validates the request, converts the amount to the
// smallest currency unit and asks the processor for a payment intent.
func (s PaymentService) CreateBookingIntent(req PaymentIntentRequest) (PaymentIntentResult, error) {
	var out PaymentIntentResult

	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return out, domain.ValidationError{Field: "amount", Msg: "Invalid amount provided"}
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return out, domain.ValidationError{Field: "customerName", Msg: "Customer name is required"}
	}
	if missing := missingAddressFields(req.CustomerAddress); len(missing) > 0 {
		return out, MissingAddressFieldsError{Fields: missing}
	}

	amountInPaise := utils.RupeesToPaise(req.Amount)
	utils.LogEvent(s.RequestID, "payments", "create_intent",
		fmt.Sprintf("amount_paise=%d customer=%s", amountInPaise, name))

	country := req.CustomerAddress.Country
	if country == "" {
		country = "IN"
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountInPaise),
		Currency:    stripe.String(string(stripe.CurrencyINR)),
		Description: stripe.String("Flight booking"),
		Shipping: &stripe.ShippingDetailsParams{
			Name: stripe.String(name),
			Address: &stripe.AddressParams{
				Line1:      stripe.String(req.CustomerAddress.Line1),
				Line2:      stripe.String(req.CustomerAddress.Line2),
				City:       stripe.String(req.CustomerAddress.City),
				State:      stripe.String(req.CustomerAddress.State),
				PostalCode: stripe.String(req.CustomerAddress.PostalCode),
				Country:    stripe.String(country),
			},
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("integration_check", "accept_a_payment")
	params.AddMetadata("customer_name", name)

	pi, err := s.create(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return out, ProcessorError{
				Message: stripeErr.Msg,
				Code:    string(stripeErr.Code),
				Type:    string(stripeErr.Type),
				Status:  stripeErr.HTTPStatusCode,
			}
		}
		return out, domain.InternalError{Msg: "Failed to create payment intent", Err: err}
	}
	if pi.ClientSecret == "" {
		return out, domain.InternalError{Msg: "Failed to create payment intent: No client secret received"}
	}

	out.ClientSecret = pi.ClientSecret
	out.ID = pi.ID
	return out, nil
}

// Required fields, checked in the order they are reported.
func missingAddressFields(a CustomerAddress) []string {
	checks := []struct {
		name  string
		value string
	}{
		{"line1", a.Line1},
		{"city", a.City},
		{"state", a.State},
		{"postal_code", a.PostalCode},
		{"country", a.Country},
	}
	var missing []string
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			missing = append(missing, c.name)
		}
	}
	return missing
}
