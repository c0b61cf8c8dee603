package services

import (
	"bytes"
	"fmt"
	"time"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/reservation"
	"flyaway/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the itinerary PDF of a submitted reservation.
type DocsService struct {
	Reservations ReservationService
	RequestID    string
	Now          func() time.Time
}

type itineraryData struct {
	ID        string
	Reference string
	Summary   reservation.SummaryView
	Payload   models.ReservationPayload
	Quote     models.PriceBreakdown
	Issued    time.Time
}

// Itinerary returns the PDF bytes and a download filename. Only reservations
// with an assembled payload have an itinerary.
func (s DocsService) Itinerary(id string) ([]byte, string, error) {
	st, err := s.Reservations.State(id)
	if err != nil {
		return nil, "", err
	}
	if st.Payload == nil {
		return nil, "", domain.NotFoundError{Resource: "itinerary"}
	}
	view := s.Reservations.render(id, st)
	utils.LogEvent(s.RequestID, "docs", "itinerary", "id="+id)

	return buildItineraryPDF(itineraryData{
		ID:        id,
		Reference: st.Reference,
		Summary:   view.Summary,
		Payload:   *st.Payload,
		Quote:     reservation.Quote(s.Reservations.Env, st),
		Issued:    s.now().In(s.Reservations.location()),
	})
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildItineraryPDF(d itineraryData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FLYAWAY ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	ref := d.Reference
	if ref == "" {
		ref = "pending"
	}
	pdf.Cell(0, 6, "Reference : "+ref)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Issued    : "+d.Issued.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	writeLeg(pdf, "Outward flight", d.Summary.Outward)
	if d.Summary.Inward != nil {
		writeLeg(pdf, "Return flight", *d.Summary.Inward)
	}

	c := d.Payload.ContactDetails
	section(pdf, "Contact")
	line(pdf, fmt.Sprintf("%s %s", c.FirstName, c.LastName))
	line(pdf, fmt.Sprintf("Mobile %s  Email %s", c.MobileNumber, c.Email))
	pdf.Ln(4)

	section(pdf, "Passengers")
	for i, p := range d.Payload.PassengerDetails {
		bag := models.BaggageSelection{}
		if i < len(d.Payload.BaggageSelections) {
			bag = d.Payload.BaggageSelections[i]
		}
		text := fmt.Sprintf("%d) %s %s %s  Passport %s  Baggage out %d kg",
			i+1, p.Title, p.FirstName, p.LastName, p.PassportNo, bag.Outward)
		if d.Summary.Inward != nil {
			text += fmt.Sprintf(", return %d kg", bag.Inward)
		}
		line(pdf, text)
	}
	pdf.Ln(4)

	section(pdf, "Charges")
	line(pdf, "Fare     : "+utils.FormatBaht(d.Quote.Fare))
	line(pdf, "Add-ons  : "+utils.FormatBaht(d.Quote.AddOns))
	line(pdf, "Baggage  : "+utils.FormatBaht(d.Quote.Baggage))
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total    : "+utils.FormatBaht(d.Quote.Grand))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Times are local to the departure airport. Please bring the passport listed for each passenger.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ITINERARY_%s_%s.pdf", utils.SafeFilenamePart(d.Summary.Outward.FlightNumber), utils.SafeFilenamePart(ref))
	return buf.Bytes(), filename, nil
}

func writeLeg(pdf *gofpdf.Fpdf, title string, l reservation.LegView) {
	section(pdf, title)
	line(pdf, fmt.Sprintf("%s %s  %s -> %s", l.Airline, l.FlightNumber, l.DepartureAirport, l.ArrivalAirport))
	line(pdf, fmt.Sprintf("Departs %s  Arrives %s", l.DepartureTime, l.ArrivalTime))
	line(pdf, fmt.Sprintf("Duration %s  Stops %s  Aircraft %s", l.Duration, l.Stops, l.Aircraft))
	pdf.Ln(4)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
}

func line(pdf *gofpdf.Fpdf, s string) {
	pdf.Cell(0, 6, s)
	pdf.Ln(6)
}
