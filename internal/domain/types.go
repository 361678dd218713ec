package domain

// TripType distinguishes one-way from round-trip itineraries.
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// Valid reports whether the trip type is one of the supported values.
func (t TripType) Valid() bool {
	return t == TripOneWay || t == TripRoundTrip
}

// SeatType classifies cabin seats; seat pricing is keyed on it.
type SeatType string

const (
	SeatWindow SeatType = "window"
	SeatMiddle SeatType = "middle"
	SeatAisle  SeatType = "aisle"
	SeatExit   SeatType = "exit"
)
