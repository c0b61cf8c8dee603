package services

import (
	"testing"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRoundTrip(t *testing.T) {
	svc := SearchService{Validator: testValidator(), Catalog: testCatalog(t)}
	res, err := svc.Search(models.TripSearchQuery{
		TripType:      domain.RoundTrip,
		Departure:     " Bangkok ",
		Arrival:       "CNX",
		DepartureDate: "2024-11-15",
		ReturnDate:    "2024-11-18",
		Passengers:    2,
		CabinClass:    domain.CabinEconomy,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bangkok", res.Query.Departure)
	require.Len(t, res.Outward, 1)
	assert.Equal(t, "DD8315", res.Outward[0].FlightNumber)
	require.Len(t, res.Inward, 1)
	assert.Equal(t, "SL512", res.Inward[0].FlightNumber)
}

func TestSearchOneWayClearsReturn(t *testing.T) {
	svc := SearchService{Validator: testValidator(), Catalog: testCatalog(t)}
	res, err := svc.Search(models.TripSearchQuery{
		TripType:      domain.OneWay,
		Departure:     "CNX",
		Arrival:       "DMK",
		DepartureDate: "2024-11-18",
		ReturnDate:    "2024-11-01",
		Passengers:    1,
		CabinClass:    domain.CabinBusiness,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Query.ReturnDate)
	assert.Nil(t, res.Inward)
	assert.Len(t, res.Outward, 1)
}

func TestSearchInvalid(t *testing.T) {
	svc := SearchService{Validator: testValidator(), Catalog: testCatalog(t)}
	_, err := svc.Search(models.TripSearchQuery{TripType: domain.RoundTrip})
	require.True(t, isValidation(err))
	fields := domain.ValidationFields(err).(map[string]string)
	assert.Contains(t, fields, "departure")
	assert.Contains(t, fields, "returnDate")
	assert.Contains(t, fields, "cabinClass")
}
