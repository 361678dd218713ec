package store

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
	"skyroute/internal/seatmap"
	"skyroute/internal/storage"
)

func searchDetails(passengers int) models.BookingDetails {
	return models.BookingDetails{
		From:          "DEL",
		To:            "BOM",
		DepartureDate: "2025-06-01",
		TripType:      domain.TripOneWay,
		Passengers:    passengers,
	}
}

func TestSetBookingCreatesPlaceholderPassengers(t *testing.T) {
	for n := 1; n <= 9; n++ {
		s := NewBookingStore(storage.NewMemStore())
		draft := s.SetBooking(searchDetails(n))

		require.Len(t, draft.Passengers, n, "passengers=%d", n)
		for i, p := range draft.Passengers {
			assert.Equal(t, i+1, p.ID)
			assert.Equal(t, fmt.Sprintf("Passenger %d", i+1), p.Name)
			assert.Nil(t, p.Seat)
		}
		assert.Equal(t, 0, draft.Bags)
	}
}

func TestSetBookingNormalizesDates(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	draft := s.SetBooking(searchDetails(1))

	parsed, err := time.Parse(time.RFC3339, draft.DepartureDate)
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
}

func TestSetBookingOverwritesExistingDraft(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	s.SetBooking(searchDetails(3))
	draft := s.SetBooking(searchDetails(1))

	assert.Len(t, draft.Passengers, 1)
	current, ok := s.Current()
	require.True(t, ok)
	assert.Len(t, current.Passengers, 1)
}

func TestUpdateBookingWithoutDraftIsNoOp(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	bags := 2
	_, ok := s.UpdateBooking(models.BookingPatch{Bags: &bags})
	assert.False(t, ok)
	_, exists := s.Current()
	assert.False(t, exists)
}

func TestUpdateBookingMergesPatch(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	s.SetBooking(searchDetails(2))

	bags := 3
	flight := models.FlightDetails{ID: "SR101", Departure: "08:00", Arrival: "10:05", Duration: "2h 5m", Price: 5400}
	updated, ok := s.UpdateBooking(models.BookingPatch{Bags: &bags, FlightDetails: &flight})
	require.True(t, ok)

	assert.Equal(t, 3, updated.Bags)
	require.NotNil(t, updated.FlightDetails)
	assert.Equal(t, "SR101", updated.FlightDetails.ID)
	// Untouched fields survive the merge.
	assert.Len(t, updated.Passengers, 2)
	assert.Equal(t, "DEL", updated.From)
}

func TestConfirmBookingMovesDraftToHistoryOnce(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	s.SetBooking(searchDetails(2))

	confirmed, ok := s.ConfirmBooking()
	require.True(t, ok)
	assert.NotEmpty(t, confirmed.BookingDate)

	_, hasDraft := s.Current()
	assert.False(t, hasDraft)
	assert.Len(t, s.History(), 1)

	// Confirming again without a draft appends nothing.
	_, ok = s.ConfirmBooking()
	assert.False(t, ok)
	assert.Len(t, s.History(), 1)
}

func TestRemoveBookingKeepsRelativeOrder(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	for i := 1; i <= 4; i++ {
		s.SetBooking(searchDetails(i))
		s.ConfirmBooking()
	}

	require.True(t, s.RemoveBooking(1))
	history := s.History()
	require.Len(t, history, 3)
	assert.Len(t, history[0].Passengers, 1)
	assert.Len(t, history[1].Passengers, 3)
	assert.Len(t, history[2].Passengers, 4)
}

func TestRemoveBookingInvalidIndexIsNoOp(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	s.SetBooking(searchDetails(1))
	s.ConfirmBooking()

	for _, idx := range []int{-1, 1, 100} {
		assert.False(t, s.RemoveBooking(idx), "index=%d", idx)
	}
	assert.Len(t, s.History(), 1)
}

func TestAssignSeatScenario(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	s.SetBooking(searchDetails(2))

	seatA, err := seatmap.SeatFromID("1A")
	require.NoError(t, err)
	seatB, err := seatmap.SeatFromID("1B")
	require.NoError(t, err)

	_, err = s.AssignSeat(1, seatA)
	require.NoError(t, err)
	updated, err := s.AssignSeat(2, seatB)
	require.NoError(t, err)

	require.NotNil(t, updated.Passengers[0].Seat)
	assert.Equal(t, int64(500), updated.Passengers[0].Seat.Price)
	require.NotNil(t, updated.Passengers[1].Seat)
	assert.Equal(t, int64(300), updated.Passengers[1].Seat.Price)

	confirmed, ok := s.ConfirmBooking()
	require.True(t, ok)
	assert.Equal(t, 0, confirmed.Bags)
	assert.NotEmpty(t, confirmed.BookingDate)
}

func TestAssignSeatRejectsOccupiedAndUnknownPassenger(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())

	seat, err := seatmap.SeatFromID("2C")
	require.NoError(t, err)

	_, err = s.AssignSeat(1, seat)
	assert.True(t, domain.IsConflict(err), "no draft")

	s.SetBooking(searchDetails(1))
	occupied := seat
	occupied.IsOccupied = true
	_, err = s.AssignSeat(1, occupied)
	assert.True(t, domain.IsConflict(err), "occupied seat")

	_, err = s.AssignSeat(99, seat)
	assert.True(t, domain.IsNotFound(err), "unknown passenger")
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := storage.NewMemStore()
	s := NewBookingStore(snap)
	s.SetBooking(searchDetails(2))

	seat, err := seatmap.SeatFromID("12F")
	require.NoError(t, err)
	_, err = s.AssignSeat(2, seat)
	require.NoError(t, err)
	s.ConfirmBooking()
	s.SetBooking(searchDetails(1))

	// A fresh store over the same backend sees equivalent state.
	reloaded := NewBookingStore(snap)
	draft, ok := reloaded.Current()
	require.True(t, ok)
	assert.Len(t, draft.Passengers, 1)

	history := reloaded.History()
	require.Len(t, history, 1)
	require.NotNil(t, history[0].Passengers[1].Seat)
	assert.Equal(t, "12F", history[0].Passengers[1].Seat.ID)
	assert.Equal(t, domain.SeatExit, history[0].Passengers[1].Seat.Type)
	assert.NotEmpty(t, history[0].BookingDate)
}

func TestRehydrateIgnoresCorruptSnapshot(t *testing.T) {
	snap := storage.NewMemStore()
	require.NoError(t, snap.Save(storage.BookingKey, []byte("{not json")))

	s := NewBookingStore(snap)
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Empty(t, s.History())
}

func TestRehydrateReParsesSerializedDates(t *testing.T) {
	snap := storage.NewMemStore()
	record := BookingSnapshot{
		CurrentBooking: &models.BookingData{
			From:          "DEL",
			To:            "BOM",
			DepartureDate: "2025-06-01",
			TripType:      domain.TripOneWay,
			Passengers:    []models.Passenger{{ID: 1, Name: "Passenger 1"}},
		},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, snap.Save(storage.BookingKey, data))

	s := NewBookingStore(snap)
	draft, ok := s.Current()
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, draft.DepartureDate)
	assert.NoError(t, err, "dates are canonicalized on rehydrate")
}

func TestHistoryCopiesDoNotAliasStore(t *testing.T) {
	s := NewBookingStore(storage.NewMemStore())
	s.SetBooking(searchDetails(1))
	s.ConfirmBooking()

	history := s.History()
	history[0].Passengers[0].Name = "mutated"

	fresh := s.History()
	assert.Equal(t, "Passenger 1", fresh[0].Passengers[0].Name)
}
