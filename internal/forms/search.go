package forms

import (
	"strings"
	"time"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/validation"
)

type SearchField string

const (
	SearchTripType      SearchField = "tripType"
	SearchDeparture     SearchField = "departure"
	SearchArrival       SearchField = "arrival"
	SearchDepartureDate SearchField = "departureDate"
	SearchReturnDate    SearchField = "returnDate"
	SearchPassengers    SearchField = "passengers"
	SearchCabinClass    SearchField = "cabinClass"
)

var searchSchema = validation.Schema[SearchField]{
	Fields: []SearchField{
		SearchTripType, SearchDeparture, SearchArrival, SearchDepartureDate,
		SearchReturnDate, SearchPassengers, SearchCabinClass,
	},
	Messages: map[SearchField]map[string]string{
		SearchTripType:  {"": "Trip type must be roundtrip or oneway"},
		SearchDeparture: {"": "Departure is required"},
		SearchArrival:   {"": "Arrival is required"},
		SearchDepartureDate: {
			"required": "Departure date is required",
			"datetime": "Departure date must be a valid date",
		},
		SearchReturnDate: {
			"required_if": "Return date is required",
			"datetime":    "Return date must be a valid date",
			"onorafter":   "Return date cannot be before the departure date",
		},
		SearchPassengers: {"": "Passengers must be between 1 and 9"},
		SearchCabinClass: {"": "Cabin class is required"},
	},
}

// CabinClasses in select order with their labels.
var CabinClasses = []struct {
	Value domain.CabinClass `json:"value"`
	Label string            `json:"label"`
}{
	{domain.CabinEconomy, "Economy"},
	{domain.CabinPremiumEconomy, "Premium Economy"},
	{domain.CabinBusiness, "Business"},
	{domain.CabinFirst, "First Class"},
}

// NewSearch returns the form defaults: a one-week round trip from today for
// one economy passenger.
func NewSearch(now time.Time) models.TripSearchQuery {
	return models.TripSearchQuery{
		TripType:      domain.RoundTrip,
		DepartureDate: now.Format("2006-01-02"),
		ReturnDate:    now.AddDate(0, 0, 7).Format("2006-01-02"),
		Passengers:    1,
		CabinClass:    domain.CabinEconomy,
	}
}

// NormalizeSearch trims text fields and drops the return date on one-way trips.
func NormalizeSearch(q models.TripSearchQuery) models.TripSearchQuery {
	q.Departure = strings.TrimSpace(q.Departure)
	q.Arrival = strings.TrimSpace(q.Arrival)
	q.DepartureDate = strings.TrimSpace(q.DepartureDate)
	q.ReturnDate = strings.TrimSpace(q.ReturnDate)
	if q.TripType == domain.OneWay {
		q.ReturnDate = ""
	}
	return q
}

// SwapLocations exchanges departure and arrival.
func SwapLocations(q models.TripSearchQuery) models.TripSearchQuery {
	q.Departure, q.Arrival = q.Arrival, q.Departure
	return q
}

func ValidateSearch(v *validation.Validator, q models.TripSearchQuery) validation.Errors[SearchField] {
	return validation.Check(v, searchSchema, NormalizeSearch(q))
}
