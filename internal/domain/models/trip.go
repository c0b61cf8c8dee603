package models

import "flyaway/internal/domain"

// TripSearchQuery is the landing-page search form.
type TripSearchQuery struct {
	TripType      domain.TripType   `json:"tripType" form:"tripType" validate:"required,oneof=roundtrip oneway"`
	Departure     string            `json:"departure" form:"departure" validate:"required"`
	Arrival       string            `json:"arrival" form:"arrival" validate:"required"`
	DepartureDate string            `json:"departureDate" form:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    string            `json:"returnDate,omitempty" form:"returnDate" validate:"required_if=TripType roundtrip,omitempty,datetime=2006-01-02,onorafter=DepartureDate"`
	Passengers    int               `json:"passengers" form:"passengers" validate:"required,min=1,max=9"`
	CabinClass    domain.CabinClass `json:"cabinClass" form:"cabinClass" validate:"required,oneof=economy premium_economy business first"`
}

// FlightLeg is one directional segment shown in the flight summary.
type FlightLeg struct {
	Airline          string  `json:"airline" yaml:"airline"`
	FlightNumber     string  `json:"flightNumber" yaml:"flightNumber"`
	DepartureAirport string  `json:"departureAirport" yaml:"departureAirport"`
	ArrivalAirport   string  `json:"arrivalAirport" yaml:"arrivalAirport"`
	DepartureCity    string  `json:"departureCity,omitempty" yaml:"departureCity"`
	ArrivalCity      string  `json:"arrivalCity,omitempty" yaml:"arrivalCity"`
	DepartureTime    string  `json:"departureTime" yaml:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime" yaml:"arrivalTime"`
	Price            int64   `json:"price" yaml:"price"`
	Duration         string  `json:"duration" yaml:"duration"`
	Stops            string  `json:"stops" yaml:"stops"`
	Layover          *string `json:"layover" yaml:"layover"`
	Image            string  `json:"image" yaml:"image"`
	Baggage          string  `json:"baggage,omitempty" yaml:"baggage"`
	CabinBaggage     string  `json:"cabinBaggage,omitempty" yaml:"cabinBaggage"`
	Aircraft         string  `json:"aircraft,omitempty" yaml:"aircraft"`
	SeatLayout       string  `json:"seatLayout,omitempty" yaml:"seatLayout"`
	SeatPitch        string  `json:"seatPitch,omitempty" yaml:"seatPitch"`
}

// ReservationDraft pairs the chosen legs. Inward is set iff the booking is round-trip.
type ReservationDraft struct {
	Outward FlightLeg  `json:"outwardFlight"`
	Inward  *FlightLeg `json:"inwardFlight,omitempty"`
}

// RoundTrip reports whether the draft carries a return leg.
func (d ReservationDraft) RoundTrip() bool { return d.Inward != nil }

// TotalPrice is the sum of leg prices.
func (d ReservationDraft) TotalPrice() int64 {
	total := d.Outward.Price
	if d.Inward != nil {
		total += d.Inward.Price
	}
	return total
}
