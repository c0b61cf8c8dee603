package domain

// TripType is the search-form trip kind.
type TripType string

const (
	RoundTrip TripType = "roundtrip"
	OneWay    TripType = "oneway"
)

// CabinClass values accepted by the search form.
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// Leg identifies one directional flight segment.
type Leg string

const (
	Outward Leg = "outward"
	Inward  Leg = "inward"
)

// AddOn names one of the four optional paid services.
type AddOn string

const (
	AddOnInsurance AddOn = "flightInsurance"
	AddOnMeal      AddOn = "mealOption"
	AddOnSeat      AddOn = "seatSelection"
	AddOnBaggage   AddOn = "baggageAllowance"
)

// AddOns lists the add-ons in display order.
var AddOns = []AddOn{AddOnInsurance, AddOnMeal, AddOnSeat, AddOnBaggage}

// ParseAddOn resolves a path or form value into a known add-on.
func ParseAddOn(s string) (AddOn, bool) {
	for _, a := range AddOns {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}
