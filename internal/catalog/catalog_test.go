package catalog

import (
	"testing"

	"flyaway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "FlyAway", c.Brand)
	assert.Equal(t, 2, c.Traveler.PassengerCount)
	assert.Len(t, c.Features, 6)
	assert.Len(t, c.Promos, 4)
	assert.Len(t, c.Testimonials, 3)

	d := c.Draft(true)
	require.NotNil(t, d.Inward)
	assert.Equal(t, "DD8315", d.Outward.FlightNumber)
	assert.Equal(t, "SL512", d.Inward.FlightNumber)
	assert.Equal(t, int64(2550), d.TotalPrice())
	assert.Nil(t, c.Draft(false).Inward)
}

func TestAddOnTable(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	table := c.AddOnTable()
	require.Len(t, table, 4)
	assert.Equal(t, int64(150), table[domain.AddOnInsurance].Price)
	assert.Equal(t, int64(280), table[domain.AddOnMeal].Price)
	assert.Equal(t, int64(100), table[domain.AddOnSeat].Price)
	assert.Equal(t, int64(300), table[domain.AddOnBaggage].Price)
	assert.NotEmpty(t, table[domain.AddOnMeal].Benefits)
}

func TestBaggageOptionsStartWithNone(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	for _, leg := range []domain.Leg{domain.Outward, domain.Inward} {
		opts := c.BaggageOptions(leg)
		require.NotEmpty(t, opts)
		assert.Equal(t, 0, opts[0].Weight)
		assert.Zero(t, opts[0].Price)
	}
}

func TestSearchLegs(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.SearchLegs("", ""), 2)

	out := c.SearchLegs("dmk", "chiang mai")
	require.Len(t, out, 1)
	assert.Equal(t, "DD8315", out[0].FlightNumber)

	back := c.SearchLegs("CNX", "Bangkok")
	require.Len(t, back, 1)
	assert.Equal(t, "SL512", back[0].FlightNumber)

	assert.Empty(t, c.SearchLegs("HKT", ""))
}

func TestParseRejectsBrokenCatalogs(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "brand: [",
		"no travelers":   "traveler: {passengerCount: 0}\nflights: {outward: {flightNumber: X1}}",
		"no outward":     "traveler: {passengerCount: 1}",
		"missing inward": "traveler: {passengerCount: 1}\nflights: {roundTrip: true, outward: {flightNumber: X1}}",
		"bad rating":     "traveler: {passengerCount: 1}\nflights: {outward: {flightNumber: X1}}\ntestimonials: [{author: A, rating: 6}]",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}

	c, err := Parse([]byte("traveler: {passengerCount: 1}\nflights: {outward: {flightNumber: X1}}"))
	require.NoError(t, err)
	assert.Equal(t, "X1", c.Flights.Outward.FlightNumber)
}
