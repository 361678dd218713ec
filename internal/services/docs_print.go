package services

import (
	"bytes"
	"html/template"
	"strconv"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
	"skyroute/internal/utils"
)

// The print view mirrors the PDF content as a standalone HTML page with
// inlined print CSS that triggers the browser print dialog on load.
var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  * { box-sizing: border-box; -webkit-print-color-adjust: exact; }
  body { font-family: Helvetica, Arial, sans-serif; margin: 0; padding: 16px; background: #fff; color: #0a0a0a; }
  .doc { border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; margin-bottom: 16px; page-break-inside: avoid; }
  .brand { font-weight: bold; font-size: 18px; }
  .kind { float: right; font-size: 11px; font-weight: bold; letter-spacing: 1px; }
  .route { font-size: 28px; font-weight: bold; margin: 12px 0; }
  .field { margin: 4px 0; font-size: 13px; }
  .field span { color: #6b7280; display: inline-block; width: 90px; }
  .note { margin-top: 12px; font-size: 11px; color: #6b7280; font-style: italic; }
  @media print { body { padding: 0; } }
</style>
</head>
<body>
{{range .Docs}}
<div class="doc">
  <div><span class="brand">SkyRoute</span><span class="kind">{{$.Kind}}</span></div>
  <div class="route">{{.Route}}</div>
  {{range .Fields}}<div class="field"><span>{{.Label}}</span>{{.Value}}</div>
  {{end}}
  <div class="note">{{$.Note}}</div>
</div>
{{end}}
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`))

type printField struct {
	Label string
	Value string
}

type printDoc struct {
	Route  string
	Fields []printField
}

type printPage struct {
	Title string
	Kind  string
	Note  string
	Docs  []printDoc
}

// RenderTicketsHTML produces the printable boarding-pass page.
func (s DocsService) RenderTicketsHTML(b models.BookingData) ([]byte, error) {
	if len(b.Passengers) == 0 {
		return nil, domain.ValidationError{Field: "passengers", Msg: "booking has no passengers"}
	}

	flightNo := s.fallbackFlightNumber()
	departs := "19:30"
	if b.FlightDetails != nil {
		flightNo = b.FlightDetails.ID
		departs = b.FlightDetails.Departure
	}
	boarding := utils.BoardingTime(departs, "18:30")

	page := printPage{
		Title: "SkyRoute E-Tickets",
		Kind:  "BOARDING PASS",
		Note:  "Note: Please be at the gate 30 minutes before boarding. Have a pleasant flight!",
	}
	for _, p := range b.Passengers {
		seatID := "-"
		if p.Seat != nil {
			seatID = p.Seat.ID
		}
		page.Docs = append(page.Docs, printDoc{
			Route: b.From + " -> " + b.To,
			Fields: []printField{
				{"Passenger", safe(p.Name, "-")},
				{"Date", safe(utils.FormatHumanDate(b.DepartureDate), "-")},
				{"PNR", s.pnr()},
				{"Flight", flightNo},
				{"Departs", departs},
				{"Boarding", boarding},
				{"Gate", s.gate()},
				{"Seat", seatID},
			},
		})
	}
	return renderPrintPage(page)
}

// RenderBaggageTagsHTML produces the printable baggage-tag page.
func (s DocsService) RenderBaggageTagsHTML(b models.BookingData) ([]byte, error) {
	if b.Bags <= 0 {
		return nil, domain.ConflictError{Resource: "booking", Msg: "no baggage added"}
	}
	if len(b.Passengers) == 0 {
		return nil, domain.ValidationError{Field: "passengers", Msg: "booking has no passengers"}
	}
	lead := b.Passengers[0]

	page := printPage{
		Title: "SkyRoute Baggage Tags",
		Kind:  "BAGGAGE TAG",
		Note:  "Note: This is not the airline luggage liability limit.",
	}
	for i := 1; i <= b.Bags; i++ {
		page.Docs = append(page.Docs, printDoc{
			Route: b.To,
			Fields: []printField{
				{"Passenger", safe(lead.Name, "-")},
				{"PNR", s.pnr()},
				{"Tracking", s.trackingID()},
				{"Tag", strconv.Itoa(i) + " of " + strconv.Itoa(b.Bags)},
			},
		})
	}
	return renderPrintPage(page)
}

func renderPrintPage(page printPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := printTmpl.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
