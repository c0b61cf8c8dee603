// Package catalog loads the embedded mock content: the flights on offer, the
// add-on and baggage price lists and the landing-page sections.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

type Language struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

type Flights struct {
	RoundTrip bool             `json:"roundTrip" yaml:"roundTrip"`
	Outward   models.FlightLeg `json:"outwardFlight" yaml:"outward"`
	Inward    models.FlightLeg `json:"inwardFlight" yaml:"inward"`
}

type AddOns struct {
	FlightInsurance  models.AddOnOption `yaml:"flightInsurance"`
	MealOption       models.AddOnOption `yaml:"mealOption"`
	SeatSelection    models.AddOnOption `yaml:"seatSelection"`
	BaggageAllowance models.AddOnOption `yaml:"baggageAllowance"`
}

type Baggage struct {
	Outward []models.BaggageOption `json:"outward" yaml:"outward"`
	Inward  []models.BaggageOption `json:"inward" yaml:"inward"`
}

type Catalog struct {
	Brand        string               `json:"brand" yaml:"brand"`
	Languages    []Language           `json:"languages" yaml:"languages"`
	Traveler     models.Traveler      `json:"traveler" yaml:"traveler"`
	Flights      Flights              `json:"flights" yaml:"flights"`
	AddOnOptions AddOns               `json:"-" yaml:"addOns"`
	Baggage      Baggage              `json:"baggage" yaml:"baggage"`
	Hero         models.Hero          `json:"hero" yaml:"hero"`
	Features     []models.Feature     `json:"features" yaml:"features"`
	Promos       []models.Promo       `json:"promos" yaml:"promos"`
	Testimonials []models.Testimonial `json:"testimonials" yaml:"testimonials"`
	Footer       models.Footer        `json:"footer" yaml:"footer"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes a catalog document and checks the invariants the booking flow relies on.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if c.Traveler.PassengerCount < 1 {
		return nil, fmt.Errorf("catalog: traveler passengerCount must be at least 1")
	}
	if c.Flights.Outward.FlightNumber == "" {
		return nil, fmt.Errorf("catalog: outward flight is missing")
	}
	if c.Flights.RoundTrip && c.Flights.Inward.FlightNumber == "" {
		return nil, fmt.Errorf("catalog: round trip without inward flight")
	}
	for _, t := range c.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			return nil, fmt.Errorf("catalog: testimonial by %q has rating %d", t.Author, t.Rating)
		}
	}
	return &c, nil
}

// Draft returns the reservation draft on offer; the inward leg is attached
// only when roundTrip is set.
func (c *Catalog) Draft(roundTrip bool) models.ReservationDraft {
	d := models.ReservationDraft{Outward: c.Flights.Outward}
	if roundTrip {
		in := c.Flights.Inward
		d.Inward = &in
	}
	return d
}

// AddOn returns the catalog entry behind an add-on toggle.
func (c *Catalog) AddOn(a domain.AddOn) models.AddOnOption {
	switch a {
	case domain.AddOnInsurance:
		return c.AddOnOptions.FlightInsurance
	case domain.AddOnMeal:
		return c.AddOnOptions.MealOption
	case domain.AddOnSeat:
		return c.AddOnOptions.SeatSelection
	case domain.AddOnBaggage:
		return c.AddOnOptions.BaggageAllowance
	}
	return models.AddOnOption{}
}

// AddOnTable maps every add-on to its catalog entry.
func (c *Catalog) AddOnTable() map[domain.AddOn]models.AddOnOption {
	out := make(map[domain.AddOn]models.AddOnOption, len(domain.AddOns))
	for _, a := range domain.AddOns {
		out[a] = c.AddOn(a)
	}
	return out
}

// BaggageOptions returns the tiers offered on leg.
func (c *Catalog) BaggageOptions(leg domain.Leg) []models.BaggageOption {
	if leg == domain.Inward {
		return c.Baggage.Inward
	}
	return c.Baggage.Outward
}

// SearchLegs returns the legs matching the requested airports or cities.
// An empty side matches anything.
func (c *Catalog) SearchLegs(departure, arrival string) []models.FlightLeg {
	legs := []models.FlightLeg{c.Flights.Outward}
	if c.Flights.Inward.FlightNumber != "" {
		legs = append(legs, c.Flights.Inward)
	}
	return slices.DeleteFunc(legs, func(l models.FlightLeg) bool {
		return !placeMatches(departure, l.DepartureAirport, l.DepartureCity) ||
			!placeMatches(arrival, l.ArrivalAirport, l.ArrivalCity)
	})
}

func placeMatches(query, code, city string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.EqualFold(q, code) || strings.EqualFold(q, city)
}
