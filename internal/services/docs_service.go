package services

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/phpdave11/gofpdf"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
	"skyroute/internal/utils"
)

// DocsService renders boarding passes and baggage tags for a confirmed
// booking. PNR, gate and tracking numbers are generated per render, like
// the rest of the non-authoritative display data; inject Rand to make
// the output reproducible.
type DocsService struct {
	RequestID string
	Rand      *rand.Rand
}

var (
	defaultRandMu sync.Mutex
	defaultRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

const pnrCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (s DocsService) intn(n int) int {
	if s.Rand != nil {
		return s.Rand.Intn(n)
	}
	defaultRandMu.Lock()
	defer defaultRandMu.Unlock()
	return defaultRand.Intn(n)
}

// pnr follows the SKY+6 alphanumeric record-locator shape.
func (s DocsService) pnr() string {
	var b strings.Builder
	b.WriteString("SKY")
	for i := 0; i < 6; i++ {
		b.WriteByte(pnrCharset[s.intn(len(pnrCharset))])
	}
	return b.String()
}

func (s DocsService) gate() string {
	return fmt.Sprintf("%c%d", 'A'+byte(s.intn(10)), 1+s.intn(15))
}

func (s DocsService) trackingID() string {
	return fmt.Sprintf("SRBG%d", 100000+s.intn(900000))
}

func (s DocsService) fallbackFlightNumber() string {
	return fmt.Sprintf("SR%d", 100+s.intn(900))
}

// GenerateTickets renders one boarding pass per passenger into a single
// PDF and returns the bytes plus a download filename.
func (s DocsService) GenerateTickets(b models.BookingData) ([]byte, string, error) {
	if len(b.Passengers) == 0 {
		return nil, "", domain.ValidationError{Field: "passengers", Msg: "booking has no passengers"}
	}

	flightNo := s.fallbackFlightNumber()
	departs := "19:30"
	if b.FlightDetails != nil {
		flightNo = b.FlightDetails.ID
		departs = b.FlightDetails.Departure
	}
	boarding := utils.BoardingTime(departs, "18:30")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SkyRoute E-Tickets", false)

	for _, p := range b.Passengers {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 20)
		pdf.Cell(0, 10, "SkyRoute")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 10, "BOARDING PASS", "", 1, "R", false, 0, "")
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "B", 26)
		pdf.Cell(60, 12, b.From)
		pdf.SetFont("Helvetica", "", 14)
		pdf.Cell(20, 12, "->")
		pdf.SetFont("Helvetica", "B", 26)
		pdf.CellFormat(0, 12, b.To, "", 1, "", false, 0, "")
		pdf.Ln(6)

		seatID := "-"
		if p.Seat != nil {
			seatID = p.Seat.ID
		}
		pdf.SetFont("Helvetica", "", 12)
		lines := []string{
			fmt.Sprintf("Passenger : %s", safe(p.Name, "-")),
			fmt.Sprintf("Date      : %s", safe(utils.FormatHumanDate(b.DepartureDate), "-")),
			fmt.Sprintf("PNR       : %s", s.pnr()),
			fmt.Sprintf("Flight    : %s", flightNo),
			fmt.Sprintf("Departs   : %s", departs),
			fmt.Sprintf("Boarding  : %s", boarding),
			fmt.Sprintf("Gate      : %s", s.gate()),
			fmt.Sprintf("Seat      : %s", seatID),
		}
		for _, line := range lines {
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}

		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Note: Please be at the gate 30 minutes before boarding. Have a pleasant flight!", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_tickets",
		fmt.Sprintf("passengers=%d route=%s-%s", len(b.Passengers), b.From, b.To))

	filename := fmt.Sprintf("SkyRoute_E-Tickets_%s.pdf", safeFilenamePart(b.From+"_"+b.To))
	return buf.Bytes(), filename, nil
}

// GenerateBaggageTags renders one tag per checked bag. Tags carry the
// lead passenger's name, matching the check-in counter flow.
func (s DocsService) GenerateBaggageTags(b models.BookingData) ([]byte, string, error) {
	if b.Bags <= 0 {
		return nil, "", domain.ConflictError{Resource: "booking", Msg: "no baggage added"}
	}
	if len(b.Passengers) == 0 {
		return nil, "", domain.ValidationError{Field: "passengers", Msg: "booking has no passengers"}
	}
	lead := b.Passengers[0]

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SkyRoute Baggage Tags", false)

	for i := 1; i <= b.Bags; i++ {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 30)
		pdf.Cell(0, 14, b.To)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, "Destination")
		pdf.Ln(12)

		pdf.SetFont("Helvetica", "", 12)
		lines := []string{
			fmt.Sprintf("Passenger : %s", safe(lead.Name, "-")),
			fmt.Sprintf("PNR       : %s", s.pnr()),
			fmt.Sprintf("Tracking  : %s", s.trackingID()),
			fmt.Sprintf("Tag       : %d of %d", i, b.Bags),
		}
		for _, line := range lines {
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}

		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Note: This is not the airline luggage liability limit.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_baggage_tags",
		fmt.Sprintf("bags=%d route=%s-%s", b.Bags, b.From, b.To))

	filename := fmt.Sprintf("SkyRoute_Baggage-Tags_%s.pdf", safeFilenamePart(b.From+"_"+b.To))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	return out.String()
}
