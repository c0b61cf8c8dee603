package forms

import (
	"fmt"
	"maps"
	"slices"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/validation"
)

type PassengerField string

const (
	PassengerTitle       PassengerField = "title"
	PassengerFirstName   PassengerField = "firstName"
	PassengerLastName    PassengerField = "lastName"
	PassengerDOB         PassengerField = "dob"
	PassengerNationality PassengerField = "nationality"
	PassengerPassportNo  PassengerField = "passportNo"
)

var PassengerFields = []PassengerField{
	PassengerTitle, PassengerFirstName, PassengerLastName,
	PassengerDOB, PassengerNationality, PassengerPassportNo,
}

// Titles accepted by the title select.
var Titles = []string{"Mr", "Mrs", "Ms"}

const MaxPassengers = 9

var passengerSchema = validation.Schema[PassengerField]{
	Fields: PassengerFields,
	Messages: map[PassengerField]map[string]string{
		PassengerTitle: {
			"required": "Title is required.",
			"oneof":    "Title must be Mr, Mrs or Ms.",
		},
		PassengerFirstName: {
			"required":   "First name is required.",
			"alphaspace": "First name must contain only letters and spaces.",
		},
		PassengerLastName: {
			"required":   "Last name is required.",
			"alphaspace": "Last name must contain only letters and spaces.",
		},
		PassengerDOB: {
			"required":  "Date of birth is required.",
			"datetime":  "Date of birth must be a valid date.",
			"notfuture": "Date of birth cannot be in the future.",
		},
		PassengerNationality: {
			"required":   "Nationality is required.",
			"alphaspace": "Nationality must contain only letters and spaces.",
		},
		PassengerPassportNo: {
			"required": "Passport number is required.",
			"passport": "Passport number must be 6-9 characters long and contain only uppercase letters and numbers.",
		},
	},
}

// PassengerList is the traveler-details form: one record and one baggage
// selection per seat. Its length is fixed at creation.
type PassengerList struct {
	RoundTrip bool
	Values    []models.PassengerRecord
	Baggage   []models.BaggageSelection
	Touched   []map[PassengerField]bool
}

func NewPassengerList(count int, roundTrip bool) (PassengerList, error) {
	if count < 1 || count > MaxPassengers {
		return PassengerList{}, domain.ValidationError{Field: "passengerCount", Msg: fmt.Sprintf("must be between 1 and %d", MaxPassengers)}
	}
	touched := make([]map[PassengerField]bool, count)
	for i := range touched {
		touched[i] = map[PassengerField]bool{}
	}
	return PassengerList{
		RoundTrip: roundTrip,
		Values:    make([]models.PassengerRecord, count),
		Baggage:   make([]models.BaggageSelection, count),
		Touched:   touched,
	}, nil
}

func ParsePassengerField(s string) (PassengerField, error) {
	for _, f := range PassengerFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", domain.ValidationError{Field: "field", Msg: "unknown passenger field " + s}
}

func (p PassengerList) Len() int { return len(p.Values) }

// BaggageLegs lists the baggage fields rendered per passenger; the return leg
// only appears on round-trip bookings.
func (p PassengerList) BaggageLegs() []domain.Leg {
	if p.RoundTrip {
		return []domain.Leg{domain.Outward, domain.Inward}
	}
	return []domain.Leg{domain.Outward}
}

func (p PassengerList) Set(index int, field PassengerField, value string) (PassengerList, error) {
	if err := p.checkIndex(index); err != nil {
		return p, err
	}
	out := p.clone()
	rec := &out.Values[index]
	switch field {
	case PassengerTitle:
		rec.Title = value
	case PassengerFirstName:
		rec.FirstName = value
	case PassengerLastName:
		rec.LastName = value
	case PassengerDOB:
		rec.DOB = value
	case PassengerNationality:
		rec.Nationality = value
	case PassengerPassportNo:
		rec.PassportNo = value
	default:
		return p, domain.ValidationError{Field: "field", Msg: "unknown passenger field " + string(field)}
	}
	return out, nil
}

func (p PassengerList) Blur(index int, field PassengerField) (PassengerList, error) {
	if err := p.checkIndex(index); err != nil {
		return p, err
	}
	if _, err := ParsePassengerField(string(field)); err != nil {
		return p, err
	}
	out := p.clone()
	out.Touched[index][field] = true
	return out, nil
}

// SelectBaggage sets one leg's weight tier for a passenger. weights is the set
// of tiers offered for that leg.
func (p PassengerList) SelectBaggage(index int, leg domain.Leg, weight int, weights []int) (PassengerList, error) {
	if err := p.checkIndex(index); err != nil {
		return p, err
	}
	if !slices.Contains(p.BaggageLegs(), leg) {
		return p, domain.ValidationError{Field: "baggage." + string(leg), Msg: "not offered on this booking"}
	}
	if weight != 0 && !slices.Contains(weights, weight) {
		return p, domain.ValidationError{Field: "baggage." + string(leg), Msg: fmt.Sprintf("no %dkg option", weight)}
	}
	out := p.clone()
	if leg == domain.Inward {
		out.Baggage[index].Inward = weight
	} else {
		out.Baggage[index].Outward = weight
	}
	return out, nil
}

func (p PassengerList) TouchAll() PassengerList {
	out := p.clone()
	for i := range out.Touched {
		for _, f := range PassengerFields {
			out.Touched[i][f] = true
		}
	}
	return out
}

// Errors returns one error map per passenger, parallel to Values.
func (p PassengerList) Errors(v *validation.Validator) []validation.Errors[PassengerField] {
	out := make([]validation.Errors[PassengerField], len(p.Values))
	for i, rec := range p.Values {
		out[i] = ValidatePassenger(v, rec)
	}
	return out
}

func (p PassengerList) Visible(v *validation.Validator) []validation.Errors[PassengerField] {
	all := p.Errors(v)
	for i := range all {
		touched := p.Touched[i]
		all[i] = all[i].Only(func(f PassengerField) bool { return touched[f] })
	}
	return all
}

func (p PassengerList) checkIndex(index int) error {
	if index < 0 || index >= len(p.Values) {
		return domain.ValidationError{Field: "index", Msg: fmt.Sprintf("passenger %d does not exist", index)}
	}
	return nil
}

func (p PassengerList) clone() PassengerList {
	out := p
	out.Values = slices.Clone(p.Values)
	out.Baggage = slices.Clone(p.Baggage)
	out.Touched = make([]map[PassengerField]bool, len(p.Touched))
	for i, t := range p.Touched {
		out.Touched[i] = maps.Clone(t)
		if out.Touched[i] == nil {
			out.Touched[i] = map[PassengerField]bool{}
		}
	}
	return out
}

func ValidatePassenger(v *validation.Validator, rec models.PassengerRecord) validation.Errors[PassengerField] {
	return validation.Check(v, passengerSchema, rec)
}
