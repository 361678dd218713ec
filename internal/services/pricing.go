package services

import "skyroute/internal/domain/models"

// BaggagePricePerUnit is the flat add-on price per checked bag, rupees.
const BaggagePricePerUnit = 800

// Quote breaks down the aggregate price the payment page charges.
type Quote struct {
	Currency     string `json:"currency"`
	Passengers   int    `json:"passengers"`
	Bags         int    `json:"bags"`
	FlightTotal  int64  `json:"flightTotal"`
	SeatTotal    int64  `json:"seatTotal"`
	BaggageTotal int64  `json:"baggageTotal"`
	GrandTotal   int64  `json:"grandTotal"`
}

// QuoteBooking prices a draft: flight fare per passenger, selected seat
// prices and the baggage add-on.
func QuoteBooking(b models.BookingData) Quote {
	q := Quote{
		Currency:   "INR",
		Passengers: len(b.Passengers),
		Bags:       b.Bags,
	}
	if b.FlightDetails != nil {
		q.FlightTotal = b.FlightDetails.Price * int64(len(b.Passengers))
	}
	for _, p := range b.Passengers {
		if p.Seat != nil {
			q.SeatTotal += p.Seat.Price
		}
	}
	q.BaggageTotal = int64(b.Bags) * BaggagePricePerUnit
	q.GrandTotal = q.FlightTotal + q.SeatTotal + q.BaggageTotal
	return q
}
