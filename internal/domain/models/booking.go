package models

import (
	"strconv"
	"strings"

	"skyroute/internal/domain"
	"skyroute/internal/utils"
)

// Seat describes one cabin seat on the seat map.
type Seat struct {
	ID         string          `json:"id"`
	Type       domain.SeatType `json:"type"`
	IsOccupied bool            `json:"isOccupied"`
	Price      int64           `json:"price"`
}

// Passenger is created as a placeholder when a draft starts and only
// ever mutated through seat assignment.
type Passenger struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Seat *Seat  `json:"seat"`
}

// FlightDetails describes a selectable flight from the catalog.
type FlightDetails struct {
	ID        string `json:"id"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
	Price     int64  `json:"price"`
}

// BookingDetails is the transient search-form input that seeds a draft.
type BookingDetails struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	DepartureDate string          `json:"departureDate"`
	ReturnDate    string          `json:"returnDate,omitempty"`
	TripType      domain.TripType `json:"tripType"`
	Passengers    int             `json:"passengers"`
}

// Validate checks the search input before a draft is created.
func (d BookingDetails) Validate() error {
	if strings.TrimSpace(d.From) == "" {
		return domain.ValidationError{Field: "from", Msg: "origin is required"}
	}
	if strings.TrimSpace(d.To) == "" {
		return domain.ValidationError{Field: "to", Msg: "destination is required"}
	}
	if strings.EqualFold(strings.TrimSpace(d.From), strings.TrimSpace(d.To)) {
		return domain.ValidationError{Field: "to", Msg: "origin and destination must differ"}
	}
	if !d.TripType.Valid() {
		return domain.ValidationError{Field: "tripType", Msg: "unknown trip type"}
	}
	if d.Passengers < 1 || d.Passengers > 9 {
		return domain.ValidationError{Field: "passengers", Msg: "passenger count must be between 1 and 9"}
	}
	dep, err := utils.ParseFlexibleDate(d.DepartureDate)
	if err != nil {
		return domain.ValidationError{Field: "departureDate", Msg: "invalid departure date", Err: err}
	}
	if d.TripType == domain.TripRoundTrip {
		ret, err := utils.ParseFlexibleDate(d.ReturnDate)
		if err != nil {
			return domain.ValidationError{Field: "returnDate", Msg: "return date is required for round trips", Err: err}
		}
		if !ret.After(dep) {
			return domain.ValidationError{Field: "returnDate", Msg: "return date must be after departure date"}
		}
	}
	return nil
}

// BookingData is the durable draft/history shape once a booking exists.
// Dates are held as canonical RFC 3339 strings.
type BookingData struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	DepartureDate string          `json:"departureDate"`
	ReturnDate    string          `json:"returnDate,omitempty"`
	TripType      domain.TripType `json:"tripType"`
	Passengers    []Passenger     `json:"passengers"`
	Bags          int             `json:"bags"`
	FlightDetails *FlightDetails  `json:"flightDetails,omitempty"`
	BookingDate   string          `json:"bookingDate,omitempty"`
}

// Clone returns a deep copy so history entries never alias the draft.
func (b BookingData) Clone() BookingData {
	out := b
	out.Passengers = make([]Passenger, len(b.Passengers))
	for i, p := range b.Passengers {
		out.Passengers[i] = p
		if p.Seat != nil {
			seat := *p.Seat
			out.Passengers[i].Seat = &seat
		}
	}
	if b.FlightDetails != nil {
		fd := *b.FlightDetails
		out.FlightDetails = &fd
	}
	return out
}

// BookingPatch supports PATCH-style draft updates via field presence.
type BookingPatch struct {
	DepartureDate *string        `json:"departureDate,omitempty"`
	ReturnDate    *string        `json:"returnDate,omitempty"`
	Bags          *int           `json:"bags,omitempty"`
	FlightDetails *FlightDetails `json:"flightDetails,omitempty"`
	Passengers    []Passenger    `json:"passengers,omitempty"`
}

// Validate rejects malformed partial updates at the boundary.
func (p BookingPatch) Validate() error {
	if p.Bags != nil && *p.Bags < 0 {
		return domain.ValidationError{Field: "bags", Msg: "bag count cannot be negative"}
	}
	if p.DepartureDate != nil {
		if _, err := utils.ParseFlexibleDate(*p.DepartureDate); err != nil {
			return domain.ValidationError{Field: "departureDate", Msg: "invalid departure date", Err: err}
		}
	}
	if p.ReturnDate != nil && *p.ReturnDate != "" {
		if _, err := utils.ParseFlexibleDate(*p.ReturnDate); err != nil {
			return domain.ValidationError{Field: "returnDate", Msg: "invalid return date", Err: err}
		}
	}
	if p.FlightDetails != nil && strings.TrimSpace(p.FlightDetails.ID) == "" {
		return domain.ValidationError{Field: "flightDetails", Msg: "flight id is required"}
	}
	return nil
}

// NewDraft builds the initial draft from validated search details.
// Passenger placeholders get stable 1-based ids for the draft lifetime.
func NewDraft(d BookingDetails) BookingData {
	passengers := make([]Passenger, d.Passengers)
	for i := range passengers {
		passengers[i] = Passenger{
			ID:   i + 1,
			Name: "Passenger " + strconv.Itoa(i+1),
			Seat: nil,
		}
	}
	return BookingData{
		From:          strings.TrimSpace(d.From),
		To:            strings.TrimSpace(d.To),
		DepartureDate: utils.NormalizeDate(d.DepartureDate),
		ReturnDate:    utils.NormalizeDate(d.ReturnDate),
		TripType:      d.TripType,
		Passengers:    passengers,
		Bags:          0,
	}
}
