package reservation

import (
	"flyaway/internal/domain"
	"flyaway/internal/forms"
)

// Action is one user interaction applied by Reduce.
type Action interface {
	apply(env Env, s State) (State, error)
}

// Reduce applies a to s and returns the next state. On error the returned
// state is s unchanged.
func Reduce(env Env, s State, a Action) (State, error) {
	next, err := a.apply(env, s)
	if err != nil {
		return s, err
	}
	return next, nil
}

type EditContact struct {
	Field forms.ContactField
	Value string
}

func (a EditContact) apply(_ Env, s State) (State, error) {
	c, err := s.Contact.Set(a.Field, a.Value)
	if err != nil {
		return s, err
	}
	s.Contact = c
	s.Phase = PhaseIdle
	return s, nil
}

type BlurContact struct {
	Field forms.ContactField
}

func (a BlurContact) apply(_ Env, s State) (State, error) {
	c, err := s.Contact.Blur(a.Field)
	if err != nil {
		return s, err
	}
	s.Contact = c
	return s, nil
}

type EditPassenger struct {
	Index int
	Field forms.PassengerField
	Value string
}

func (a EditPassenger) apply(_ Env, s State) (State, error) {
	p, err := s.Passengers.Set(a.Index, a.Field, a.Value)
	if err != nil {
		return s, err
	}
	s.Passengers = p
	s.Phase = PhaseIdle
	return s, nil
}

type BlurPassenger struct {
	Index int
	Field forms.PassengerField
}

func (a BlurPassenger) apply(_ Env, s State) (State, error) {
	p, err := s.Passengers.Blur(a.Index, a.Field)
	if err != nil {
		return s, err
	}
	s.Passengers = p
	return s, nil
}

// ToggleAddOn flips one add-on; the others are left as they are.
type ToggleAddOn struct {
	AddOn domain.AddOn
}

func (a ToggleAddOn) apply(_ Env, s State) (State, error) {
	switch a.AddOn {
	case domain.AddOnInsurance:
		s.AddOns.FlightInsurance = !s.AddOns.FlightInsurance
	case domain.AddOnMeal:
		s.AddOns.MealOption = !s.AddOns.MealOption
	case domain.AddOnSeat:
		s.AddOns.SeatSelection = !s.AddOns.SeatSelection
	case domain.AddOnBaggage:
		s.AddOns.BaggageAllowance = !s.AddOns.BaggageAllowance
	default:
		return s, domain.ValidationError{Field: "addOn", Msg: "unknown add-on " + string(a.AddOn)}
	}
	s.Phase = PhaseIdle
	return s, nil
}

type SelectBaggage struct {
	Index  int
	Leg    domain.Leg
	Weight int
}

func (a SelectBaggage) apply(env Env, s State) (State, error) {
	p, err := s.Passengers.SelectBaggage(a.Index, a.Leg, a.Weight, env.weights(a.Leg))
	if err != nil {
		return s, err
	}
	s.Passengers = p
	s.Phase = PhaseIdle
	return s, nil
}

// AttemptSubmit forces every field touched, then either blocks with labeled
// errors or assembles the payload. Any earlier payload and reference are
// dropped either way.
type AttemptSubmit struct{}

func (AttemptSubmit) apply(env Env, s State) (State, error) {
	s.Phase = PhaseValidating
	s.ValidateRequested = true
	s.Contact = s.Contact.TouchAll()
	s.Passengers = s.Passengers.TouchAll()

	validity := Check(env, s)
	if !validity.Valid() {
		s.FormErrors = validity.Labels()
		s.Payload = nil
		s.Reference = ""
		s.Phase = PhaseBlocked
		return s, nil
	}

	payload := assemble(s)
	s.FormErrors = nil
	s.Payload = &payload
	s.Reference = ""
	s.Phase = PhaseReady
	return s, nil
}

// Settle returns a finished submit attempt to idle. The summary list and the
// last payload stay for display. A non-empty Reference is recorded.
type Settle struct {
	Reference string
}

func (a Settle) apply(_ Env, s State) (State, error) {
	s.Phase = PhaseIdle
	if a.Reference != "" {
		s.Reference = a.Reference
	}
	return s, nil
}

// Reject returns a ready attempt that was not accepted downstream to idle and
// drops its payload.
type Reject struct{}

func (Reject) apply(_ Env, s State) (State, error) {
	s.Phase = PhaseIdle
	s.Payload = nil
	s.Reference = ""
	return s, nil
}

type DismissErrors struct{}

func (DismissErrors) apply(_ Env, s State) (State, error) {
	s.FormErrors = nil
	return s, nil
}
