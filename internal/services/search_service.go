package services

import (
	"fmt"

	"flyaway/internal/catalog"
	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/forms"
	"flyaway/internal/utils"
	"flyaway/internal/validation"
)

type SearchResult struct {
	Query   models.TripSearchQuery `json:"query"`
	Outward []models.FlightLeg     `json:"outwardFlights"`
	Inward  []models.FlightLeg     `json:"inwardFlights,omitempty"`
}

// SearchService answers the landing-page search from the catalog.
type SearchService struct {
	Validator *validation.Validator
	Catalog   *catalog.Catalog
	RequestID string
}

func (s SearchService) Search(q models.TripSearchQuery) (SearchResult, error) {
	if errs := forms.ValidateSearch(s.Validator, q); !errs.Empty() {
		return SearchResult{}, domain.ValidationError{Field: "search", Msg: "invalid search form", Fields: errs.Strings()}
	}
	q = forms.NormalizeSearch(q)

	out := SearchResult{Query: q, Outward: s.Catalog.SearchLegs(q.Departure, q.Arrival)}
	if q.TripType == domain.RoundTrip {
		out.Inward = s.Catalog.SearchLegs(q.Arrival, q.Departure)
	}
	utils.LogEvent(s.RequestID, "search", "search", fmt.Sprintf(
		"from=%s to=%s trip=%s passengers=%d cabin=%s outward=%d inward=%d",
		q.Departure, q.Arrival, q.TripType, q.Passengers, q.CabinClass, len(out.Outward), len(out.Inward),
	))
	return out, nil
}
