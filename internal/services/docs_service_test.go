package services

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
)

func confirmedBooking() models.BookingData {
	return models.BookingData{
		From:          "DEL",
		To:            "BOM",
		DepartureDate: "2025-06-01T00:00:00Z",
		TripType:      domain.TripOneWay,
		Passengers: []models.Passenger{
			{ID: 1, Name: "Jane Doe", Seat: &models.Seat{ID: "1A", Type: domain.SeatWindow, Price: 500}},
			{ID: 2, Name: "John Doe"},
		},
		Bags: 2,
		FlightDetails: &models.FlightDetails{
			ID: "SR101", Departure: "08:00", Arrival: "10:05", Duration: "2h 5m", Price: 5400,
		},
		BookingDate: "2025-05-20T10:00:00Z",
	}
}

func TestGenerateTicketsProducesPDF(t *testing.T) {
	svc := DocsService{Rand: rand.New(rand.NewSource(1))}

	data, filename, err := svc.GenerateTickets(confirmedBooking())
	if err != nil {
		t.Fatalf("GenerateTickets error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:8])
	}
	if filename != "SkyRoute_E-Tickets_DEL_BOM.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestGenerateTicketsRequiresPassengers(t *testing.T) {
	svc := DocsService{}
	b := confirmedBooking()
	b.Passengers = nil

	_, _, err := svc.GenerateTickets(b)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateBaggageTagsRequiresBags(t *testing.T) {
	svc := DocsService{}
	b := confirmedBooking()
	b.Bags = 0

	_, _, err := svc.GenerateBaggageTags(b)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestGenerateBaggageTagsProducesPDF(t *testing.T) {
	svc := DocsService{Rand: rand.New(rand.NewSource(1))}

	data, filename, err := svc.GenerateBaggageTags(confirmedBooking())
	if err != nil {
		t.Fatalf("GenerateBaggageTags error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "SkyRoute_Baggage-Tags_DEL_BOM.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestSeededRandIsDeterministic(t *testing.T) {
	a := DocsService{Rand: rand.New(rand.NewSource(7))}
	b := DocsService{Rand: rand.New(rand.NewSource(7))}

	if a.pnr() != b.pnr() {
		t.Fatal("same seed should produce the same PNR")
	}
	if a.gate() != b.gate() {
		t.Fatal("same seed should produce the same gate")
	}

	pnr := DocsService{Rand: rand.New(rand.NewSource(7))}.pnr()
	if !strings.HasPrefix(pnr, "SKY") || len(pnr) != 9 {
		t.Fatalf("pnr = %q", pnr)
	}
}

func TestRenderTicketsHTML(t *testing.T) {
	svc := DocsService{Rand: rand.New(rand.NewSource(1))}

	html, err := svc.RenderTicketsHTML(confirmedBooking())
	if err != nil {
		t.Fatalf("RenderTicketsHTML error: %v", err)
	}
	page := string(html)
	for _, want := range []string{"BOARDING PASS", "Jane Doe", "John Doe", "DEL -&gt; BOM", "window.print()"} {
		if !strings.Contains(page, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	// One boarding pass block per passenger.
	if got := strings.Count(page, `class="doc"`); got != 2 {
		t.Fatalf("doc blocks = %d", got)
	}
}

func TestRenderBaggageTagsHTML(t *testing.T) {
	svc := DocsService{Rand: rand.New(rand.NewSource(1))}

	html, err := svc.RenderBaggageTagsHTML(confirmedBooking())
	if err != nil {
		t.Fatalf("RenderBaggageTagsHTML error: %v", err)
	}
	page := string(html)
	if !strings.Contains(page, "BAGGAGE TAG") || !strings.Contains(page, "1 of 2") || !strings.Contains(page, "2 of 2") {
		t.Fatalf("page missing tag content")
	}
}
