// Package reservation is the state container of the reservation-detail page.
// It owns the contact and passenger forms, the add-on and baggage choices and
// the submit phase; every change goes through Reduce.
package reservation

import (
	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/forms"
	"flyaway/internal/validation"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseBlocked    Phase = "blocked"
	PhaseReady      Phase = "ready"
)

// State is one page view's reservation. Treat it as a value: Reduce never
// mutates the state it is given.
type State struct {
	Draft      models.ReservationDraft
	Contact    forms.Contact
	Passengers forms.PassengerList
	AddOns     models.AddOnSelection
	Phase      Phase
	// ValidateRequested stays set after the first submit attempt.
	ValidateRequested bool
	FormErrors        []string
	Payload           *models.ReservationPayload
	// Reference is issued when the last payload was accepted downstream.
	Reference string
}

// Env carries what reducers need besides the state itself.
type Env struct {
	Validator *validation.Validator
	// Baggage lists the offered tiers per leg.
	Baggage map[domain.Leg][]models.BaggageOption
	// AddOns holds the catalog entry behind each toggle; prices are per person.
	AddOns map[domain.AddOn]models.AddOnOption
}

func (e Env) weights(leg domain.Leg) []int {
	opts := e.Baggage[leg]
	out := make([]int, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Weight)
	}
	return out
}

// New builds an idle reservation for passengerCount travelers on draft.
func New(draft models.ReservationDraft, passengerCount int) (State, error) {
	passengers, err := forms.NewPassengerList(passengerCount, draft.RoundTrip())
	if err != nil {
		return State{}, err
	}
	return State{
		Draft:      draft,
		Contact:    forms.NewContact(),
		Passengers: passengers,
		Phase:      PhaseIdle,
	}, nil
}

// Validity is the derived submit-ability of a state.
type Validity struct {
	Contact    validation.Errors[forms.ContactField]
	Passengers []validation.Errors[forms.PassengerField]
}

func (v Validity) Valid() bool {
	if !v.Contact.Empty() {
		return false
	}
	for _, p := range v.Passengers {
		if !p.Empty() {
			return false
		}
	}
	return true
}

// Labels renders the summary list shown when a submit is blocked: contact
// errors first, then every passenger's errors in order.
func (v Validity) Labels() []string {
	var out []string
	for _, f := range v.Contact.Keys(forms.ContactFields) {
		out = append(out, "Contact: "+string(f))
	}
	for _, p := range v.Passengers {
		for _, f := range p.Keys(forms.PassengerFields) {
			out = append(out, "Passenger: "+string(f))
		}
	}
	return out
}

// Check derives the full validity of s regardless of touched state.
func Check(env Env, s State) Validity {
	return Validity{
		Contact:    s.Contact.Errors(env.Validator),
		Passengers: s.Passengers.Errors(env.Validator),
	}
}

func assemble(s State) models.ReservationPayload {
	passengers := make([]models.PassengerRecord, len(s.Passengers.Values))
	copy(passengers, s.Passengers.Values)
	baggage := make([]models.BaggageSelection, len(s.Passengers.Baggage))
	copy(baggage, s.Passengers.Baggage)
	return models.ReservationPayload{
		ContactDetails:    s.Contact.Values,
		PassengerDetails:  passengers,
		AddOns:            s.AddOns,
		BaggageSelections: baggage,
	}
}
