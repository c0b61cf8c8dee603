package models

// AddOnOption is a fixed-price catalog entry behind an add-on toggle.
type AddOnOption struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Price    int64    `json:"price" yaml:"price"`
	Benefits []string `json:"benefits" yaml:"benefits"`
}

// BaggageOption is one selectable weight tier for a leg.
type BaggageOption struct {
	Label  string `json:"label" yaml:"label"`
	Weight int    `json:"weight" yaml:"weight"`
	Price  int64  `json:"price" yaml:"price"`
}

// PriceBreakdown itemizes what a reservation would cost. Fare alone is what the
// flight summary displays as its total.
type PriceBreakdown struct {
	Fare    int64 `json:"fare"`
	AddOns  int64 `json:"addOns"`
	Baggage int64 `json:"baggage"`
	Grand   int64 `json:"grand"`
}
