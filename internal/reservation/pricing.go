package reservation

import (
	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
)

// Quote itemizes the reservation's price. Fare matches the flight summary
// total; add-ons are charged per passenger and baggage per chosen tier.
func Quote(env Env, s State) models.PriceBreakdown {
	var b models.PriceBreakdown
	b.Fare = s.Draft.TotalPrice()

	passengers := int64(s.Passengers.Len())
	for _, a := range domain.AddOns {
		if s.AddOns.Has(a) {
			b.AddOns += env.AddOns[a].Price * passengers
		}
	}

	for _, sel := range s.Passengers.Baggage {
		b.Baggage += tierPrice(env.Baggage[domain.Outward], sel.Outward)
		if s.Passengers.RoundTrip {
			b.Baggage += tierPrice(env.Baggage[domain.Inward], sel.Inward)
		}
	}

	b.Grand = b.Fare + b.AddOns + b.Baggage
	return b
}

func tierPrice(opts []models.BaggageOption, weight int) int64 {
	if weight == 0 {
		return 0
	}
	for _, o := range opts {
		if o.Weight == weight {
			return o.Price
		}
	}
	return 0
}
