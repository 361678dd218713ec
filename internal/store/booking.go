// Package store holds the process-wide application state: the in-progress
// booking draft, the confirmed booking history, and the local session.
// Every mutation is mirrored to the snapshot backend, one write per
// operation, and rehydrated at startup.
package store

import (
	"encoding/json"
	"sync"
	"time"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
	"skyroute/internal/storage"
	"skyroute/internal/utils"
)

// BookingSnapshot is the persisted record shape for the booking slice.
type BookingSnapshot struct {
	CurrentBooking *models.BookingData  `json:"currentBooking"`
	Bookings       []models.BookingData `json:"bookings"`
}

// BookingStore owns the draft lifecycle:
// absent -> drafting (SetBooking) -> drafting (UpdateBooking*) -> confirmed.
// There is no cancelled state; a draft is only replaced or left stale.
type BookingStore struct {
	mu      sync.Mutex
	current *models.BookingData
	history []models.BookingData

	snap storage.SnapshotStore
	now  func() time.Time
}

// NewBookingStore rehydrates state from the snapshot backend. A corrupt
// or missing record falls back to empty defaults.
func NewBookingStore(snap storage.SnapshotStore) *BookingStore {
	s := &BookingStore{snap: snap, now: time.Now}
	s.rehydrate()
	return s
}

func (s *BookingStore) rehydrate() {
	data, ok, err := s.snap.Load(storage.BookingKey)
	if err != nil {
		utils.LogEvent("", "store", "rehydrate_booking", "load failed: "+err.Error())
		return
	}
	if !ok {
		return
	}
	var snap BookingSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		utils.LogEvent("", "store", "rehydrate_booking", "corrupt snapshot ignored: "+err.Error())
		return
	}
	// Re-parse serialized dates back into canonical form for the draft
	// and every historical booking.
	if snap.CurrentBooking != nil {
		normalizeDates(snap.CurrentBooking)
	}
	for i := range snap.Bookings {
		normalizeDates(&snap.Bookings[i])
	}
	s.current = snap.CurrentBooking
	s.history = snap.Bookings
}

func normalizeDates(b *models.BookingData) {
	b.DepartureDate = utils.NormalizeDate(b.DepartureDate)
	b.ReturnDate = utils.NormalizeDate(b.ReturnDate)
	b.BookingDate = utils.NormalizeDate(b.BookingDate)
}

// persist mirrors current state to the snapshot backend. Failures are
// logged, never raised; the in-memory state stays authoritative.
func (s *BookingStore) persist() {
	snap := BookingSnapshot{CurrentBooking: s.current, Bookings: s.history}
	data, err := json.Marshal(snap)
	if err != nil {
		utils.LogEvent("", "store", "persist_booking", "marshal failed: "+err.Error())
		return
	}
	if err := s.snap.Save(storage.BookingKey, data); err != nil {
		utils.LogEvent("", "store", "persist_booking", "save failed: "+err.Error())
	}
}

// SetBooking replaces the draft with a fresh one built from the search
// details. Any unsaved in-progress draft is overwritten without warning.
// Input validation is the caller's responsibility.
func (s *BookingStore) SetBooking(details models.BookingDetails) models.BookingData {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := models.NewDraft(details)
	s.current = &draft
	s.persist()
	return draft.Clone()
}

// UpdateBooking shallow-merges the patch into the draft. With no draft
// it is a silent no-op and reports false.
func (s *BookingStore) UpdateBooking(patch models.BookingPatch) (models.BookingData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.BookingData{}, false
	}
	if patch.DepartureDate != nil {
		s.current.DepartureDate = utils.NormalizeDate(*patch.DepartureDate)
	}
	if patch.ReturnDate != nil {
		s.current.ReturnDate = utils.NormalizeDate(*patch.ReturnDate)
	}
	if patch.Bags != nil {
		s.current.Bags = *patch.Bags
	}
	if patch.FlightDetails != nil {
		fd := *patch.FlightDetails
		s.current.FlightDetails = &fd
	}
	if patch.Passengers != nil {
		s.current.Passengers = patch.Passengers
	}
	s.persist()
	return s.current.Clone(), true
}

// AssignSeat places a seat on the identified passenger in the draft.
func (s *BookingStore) AssignSeat(passengerID int, seat models.Seat) (models.BookingData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.BookingData{}, domain.ConflictError{Resource: "booking", Msg: "no active booking draft"}
	}
	if seat.IsOccupied {
		return models.BookingData{}, domain.ConflictError{Resource: "seat", Msg: "seat " + seat.ID + " is occupied"}
	}
	for i := range s.current.Passengers {
		if s.current.Passengers[i].ID == passengerID {
			seatCopy := seat
			s.current.Passengers[i].Seat = &seatCopy
			s.persist()
			return s.current.Clone(), nil
		}
	}
	return models.BookingData{}, domain.NotFoundError{Resource: "passenger"}
}

// ConfirmBooking stamps the draft with a confirmation timestamp, appends
// it to history and clears the draft. Confirming with no draft is a
// silent no-op, not an error.
func (s *BookingStore) ConfirmBooking() (models.BookingData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.BookingData{}, false
	}
	confirmed := s.current.Clone()
	confirmed.BookingDate = s.now().UTC().Format(time.RFC3339)
	s.history = append(s.history, confirmed)
	s.current = nil
	s.persist()
	return confirmed.Clone(), true
}

// RemoveBooking deletes the history entry at the given position,
// preserving relative order. Invalid indexes are silent no-ops.
func (s *BookingStore) RemoveBooking(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.history) {
		return false
	}
	s.history = append(s.history[:index], s.history[index+1:]...)
	s.persist()
	return true
}

// Current returns a copy of the draft, when one exists.
func (s *BookingStore) Current() (models.BookingData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.BookingData{}, false
	}
	return s.current.Clone(), true
}

// History returns a copy of the confirmed bookings in insertion order.
func (s *BookingStore) History() []models.BookingData {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BookingData, len(s.history))
	for i, b := range s.history {
		out[i] = b.Clone()
	}
	return out
}

// BookingAt returns the history entry at index.
func (s *BookingStore) BookingAt(index int) (models.BookingData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.history) {
		return models.BookingData{}, false
	}
	return s.history[index].Clone(), true
}
