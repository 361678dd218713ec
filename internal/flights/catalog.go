// Package flights holds the static destination and flight catalog the
// search flow runs against. A real inventory API would replace this.
package flights

import (
	"strings"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
)

// Destination is a selectable airport for the search form.
type Destination struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var destinations = []Destination{
	{Value: "DEL", Label: "New Delhi (DEL)"},
	{Value: "BOM", Label: "Mumbai (BOM)"},
	{Value: "BLR", Label: "Bengaluru (BLR)"},
	{Value: "MAA", Label: "Chennai (MAA)"},
	{Value: "CCU", Label: "Kolkata (CCU)"},
	{Value: "HYD", Label: "Hyderabad (HYD)"},
	{Value: "PNQ", Label: "Pune (PNQ)"},
	{Value: "AMD", Label: "Ahmedabad (AMD)"},
	{Value: "GOI", Label: "Goa (GOI)"},
	{Value: "COK", Label: "Kochi (COK)"},
}

var catalog = []models.FlightDetails{
	{ID: "SR101", Departure: "08:00", Arrival: "10:05", Duration: "2h 5m", Price: 5400},
	{ID: "SR102", Departure: "12:30", Arrival: "14:45", Duration: "2h 15m", Price: 6200},
	{ID: "SR103", Departure: "18:45", Arrival: "21:00", Duration: "2h 15m", Price: 4800},
}

// Destinations lists the supported airports.
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// Search validates the requested itinerary and returns matching flights.
// The catalog is route-independent, so every valid search sees the same
// departures.
func Search(d models.BookingDetails) ([]models.FlightDetails, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !KnownDestination(d.From) {
		return nil, domain.ValidationError{Field: "from", Msg: "unknown origin airport"}
	}
	if !KnownDestination(d.To) {
		return nil, domain.ValidationError{Field: "to", Msg: "unknown destination airport"}
	}
	return List(), nil
}

// List returns all flights in the catalog.
func List() []models.FlightDetails {
	out := make([]models.FlightDetails, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog flight.
func ByID(id string) (models.FlightDetails, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	for _, f := range catalog {
		if f.ID == id {
			return f, true
		}
	}
	return models.FlightDetails{}, false
}

// KnownDestination reports whether the airport code is in the catalog.
func KnownDestination(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, d := range destinations {
		if d.Value == code {
			return true
		}
	}
	return false
}
