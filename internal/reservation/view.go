package reservation

import (
	"time"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/utils"
)

// LegView is a flight leg prepared for display; blank fields read "Unknown".
type LegView struct {
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flightNumber"`
	DepartureAirport string  `json:"departureAirport"`
	ArrivalAirport   string  `json:"arrivalAirport"`
	DepartureTime    string  `json:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime"`
	Duration         string  `json:"duration"`
	Stops            string  `json:"stops"`
	Layover          *string `json:"layover,omitempty"`
	Image            string  `json:"image,omitempty"`
	Price            int64   `json:"price"`
	PriceDisplay     string  `json:"priceDisplay"`
	Baggage          string  `json:"baggage"`
	CabinBaggage     string  `json:"cabinBaggage"`
	Aircraft         string  `json:"aircraft"`
	SeatLayout       string  `json:"seatLayout"`
	SeatPitch        string  `json:"seatPitch"`
}

type SummaryView struct {
	Outward      LegView  `json:"outwardFlight"`
	Inward       *LegView `json:"inwardFlight,omitempty"`
	Total        int64    `json:"totalPrice"`
	TotalDisplay string   `json:"totalDisplay"`
}

type ContactView struct {
	Values models.ContactDetails `json:"values"`
	Errors map[string]string     `json:"errors"`
}

type BaggageView struct {
	Leg      domain.Leg             `json:"leg"`
	Selected int                    `json:"selected"`
	Options  []models.BaggageOption `json:"options"`
}

type PassengerView struct {
	Index   int                    `json:"index"`
	Values  models.PassengerRecord `json:"values"`
	Errors  map[string]string      `json:"errors"`
	Baggage []BaggageView          `json:"baggage"`
}

type AddOnCardView struct {
	Key          domain.AddOn `json:"key"`
	Title        string       `json:"title"`
	Price        int64        `json:"price"`
	PriceDisplay string       `json:"priceDisplay"`
	Benefits     []string     `json:"benefits"`
	Added        bool         `json:"isAdded"`
}

// View is the render model of a reservation page. Field errors only appear
// for touched fields.
type View struct {
	ID             string                     `json:"id"`
	Phase          Phase                      `json:"phase"`
	RoundTrip      bool                       `json:"isRoundTrip"`
	Summary        SummaryView                `json:"flightSummary"`
	Contact        ContactView                `json:"contactDetails"`
	Passengers     []PassengerView            `json:"passengerDetails"`
	AddOns         []AddOnCardView            `json:"addOns"`
	PriceBreakdown models.PriceBreakdown      `json:"priceBreakdown"`
	CanSubmit      bool                       `json:"canSubmit"`
	FormErrors     []string                   `json:"formErrors"`
	FormData       models.ReservationPayload  `json:"formData"`
	Payload        *models.ReservationPayload `json:"submittedPayload,omitempty"`
	Reference      string                     `json:"reference,omitempty"`
}

// Render builds the view of s. Timestamps are shown in loc.
func Render(env Env, id string, s State, loc *time.Location) View {
	v := View{
		ID:             id,
		Phase:          s.Phase,
		RoundTrip:      s.Passengers.RoundTrip,
		Summary:        renderSummary(s.Draft, loc),
		PriceBreakdown: Quote(env, s),
		CanSubmit:      Check(env, s).Valid(),
		FormErrors:     append([]string{}, s.FormErrors...),
		FormData:       assemble(s),
		Payload:        s.Payload,
		Reference:      s.Reference,
	}

	v.Contact = ContactView{
		Values: s.Contact.Values,
		Errors: s.Contact.Visible(env.Validator).Strings(),
	}

	visible := s.Passengers.Visible(env.Validator)
	for i, rec := range s.Passengers.Values {
		pv := PassengerView{Index: i, Values: rec, Errors: visible[i].Strings()}
		for _, leg := range s.Passengers.BaggageLegs() {
			sel := s.Passengers.Baggage[i].Outward
			if leg == domain.Inward {
				sel = s.Passengers.Baggage[i].Inward
			}
			pv.Baggage = append(pv.Baggage, BaggageView{Leg: leg, Selected: sel, Options: env.Baggage[leg]})
		}
		v.Passengers = append(v.Passengers, pv)
	}

	for _, a := range domain.AddOns {
		opt := env.AddOns[a]
		v.AddOns = append(v.AddOns, AddOnCardView{
			Key:          a,
			Title:        opt.Title,
			Price:        opt.Price,
			PriceDisplay: utils.FormatBaht(opt.Price) + " / person",
			Benefits:     opt.Benefits,
			Added:        s.AddOns.Has(a),
		})
	}
	return v
}

func renderSummary(d models.ReservationDraft, loc *time.Location) SummaryView {
	out := SummaryView{
		Outward:      renderLeg(d.Outward, loc),
		Total:        d.TotalPrice(),
		TotalDisplay: utils.FormatBaht(d.TotalPrice()),
	}
	if d.Inward != nil {
		in := renderLeg(*d.Inward, loc)
		out.Inward = &in
	}
	return out
}

func renderLeg(l models.FlightLeg, loc *time.Location) LegView {
	return LegView{
		Airline:          utils.OrUnknown(l.Airline),
		FlightNumber:     utils.OrUnknown(l.FlightNumber),
		DepartureAirport: utils.OrUnknown(l.DepartureAirport),
		ArrivalAirport:   utils.OrUnknown(l.ArrivalAirport),
		DepartureTime:    displayTime(l.DepartureTime, loc),
		ArrivalTime:      displayTime(l.ArrivalTime, loc),
		Duration:         utils.OrUnknown(l.Duration),
		Stops:            utils.OrUnknown(l.Stops),
		Layover:          l.Layover,
		Image:            l.Image,
		Price:            l.Price,
		PriceDisplay:     utils.FormatBaht(l.Price),
		Baggage:          utils.OrUnknown(l.Baggage),
		CabinBaggage:     utils.OrUnknown(l.CabinBaggage),
		Aircraft:         utils.OrUnknown(l.Aircraft),
		SeatLayout:       utils.OrUnknown(l.SeatLayout),
		SeatPitch:        utils.OrUnknown(l.SeatPitch),
	}
}

func displayTime(ts string, loc *time.Location) string {
	if s, ok := utils.FormatInZone(ts, loc); ok {
		return s
	}
	return "Unknown"
}
