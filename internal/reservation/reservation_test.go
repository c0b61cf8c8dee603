package reservation

import (
	"testing"
	"time"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/forms"
	"flyaway/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv() Env {
	tiers := []models.BaggageOption{
		{Label: "No extra baggage", Weight: 0, Price: 0},
		{Label: "15kg", Weight: 15, Price: 999},
		{Label: "30kg", Weight: 30, Price: 1499},
	}
	return Env{
		Validator: validation.New(validation.WithClock(func() time.Time {
			return time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
		})),
		Baggage: map[domain.Leg][]models.BaggageOption{domain.Outward: tiers, domain.Inward: tiers},
		AddOns: map[domain.AddOn]models.AddOnOption{
			domain.AddOnInsurance: {Title: "Domestic Travel Insurance", Price: 150},
			domain.AddOnMeal:      {Title: "Thai Meal", Price: 280},
			domain.AddOnSeat:      {Title: "Preferred Seat", Price: 100},
			domain.AddOnBaggage:   {Title: "Additional Baggage", Price: 300},
		},
	}
}

func testDraft(roundTrip bool) models.ReservationDraft {
	d := models.ReservationDraft{Outward: models.FlightLeg{
		Airline: "Nok Air", FlightNumber: "DD8315", DepartureAirport: "DMK", ArrivalAirport: "CNX",
		DepartureTime: "2024-11-15T08:30:00+07:00", ArrivalTime: "2024-11-15T09:45:00+07:00", Price: 1200,
	}}
	if roundTrip {
		d.Inward = &models.FlightLeg{Airline: "Thai Lion Air", FlightNumber: "SL512", DepartureAirport: "CNX", ArrivalAirport: "DMK", Price: 1350}
	}
	return d
}

func newState(t *testing.T, roundTrip bool, passengers int) State {
	t.Helper()
	s, err := New(testDraft(roundTrip), passengers)
	require.NoError(t, err)
	return s
}

func reduce(t *testing.T, env Env, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = Reduce(env, s, a)
		require.NoError(t, err)
	}
	return s
}

func fillValid(passengers int) []Action {
	out := []Action{
		EditContact{Field: forms.ContactFirstName, Value: "Somchai"},
		EditContact{Field: forms.ContactLastName, Value: "Thai"},
		EditContact{Field: forms.ContactMobileNumber, Value: "0812345678"},
		EditContact{Field: forms.ContactEmail, Value: "somchai@example.com"},
	}
	for i := 0; i < passengers; i++ {
		out = append(out,
			EditPassenger{Index: i, Field: forms.PassengerTitle, Value: "Mr"},
			EditPassenger{Index: i, Field: forms.PassengerFirstName, Value: "Somchai"},
			EditPassenger{Index: i, Field: forms.PassengerLastName, Value: "Thai"},
			EditPassenger{Index: i, Field: forms.PassengerDOB, Value: "1990-05-01"},
			EditPassenger{Index: i, Field: forms.PassengerNationality, Value: "Thai"},
			EditPassenger{Index: i, Field: forms.PassengerPassportNo, Value: "AB12345"},
		)
	}
	return out
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	env := testEnv()
	s := newState(t, true, 2)

	next := reduce(t, env, s,
		EditContact{Field: forms.ContactEmail, Value: "a@b.co"},
		BlurContact{Field: forms.ContactEmail},
		EditPassenger{Index: 1, Field: forms.PassengerFirstName, Value: "Ann"},
		SelectBaggage{Index: 0, Leg: domain.Inward, Weight: 15},
		ToggleAddOn{AddOn: domain.AddOnMeal},
		AttemptSubmit{},
	)

	assert.Empty(t, s.Contact.Values.Email)
	assert.Empty(t, s.Contact.Touched)
	assert.Empty(t, s.Passengers.Values[1].FirstName)
	assert.Equal(t, 0, s.Passengers.Baggage[0].Inward)
	assert.False(t, s.AddOns.MealOption)
	assert.Equal(t, PhaseIdle, s.Phase)

	assert.Equal(t, "Ann", next.Passengers.Values[1].FirstName)
	assert.Equal(t, 15, next.Passengers.Baggage[0].Inward)
	assert.True(t, next.AddOns.MealOption)
}

func TestReduceErrorKeepsState(t *testing.T) {
	env := testEnv()
	s := newState(t, false, 1)

	got, err := Reduce(env, s, SelectBaggage{Index: 0, Leg: domain.Inward, Weight: 15})
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, s.Passengers.Baggage, got.Passengers.Baggage)

	_, err = Reduce(env, s, ToggleAddOn{AddOn: "lounge"})
	assert.True(t, domain.IsValidation(err))

	_, err = Reduce(env, s, EditPassenger{Index: 5, Field: forms.PassengerTitle, Value: "Mr"})
	assert.True(t, domain.IsValidation(err))
}

func TestToggleAddOnIsIndependent(t *testing.T) {
	env := testEnv()
	s := reduce(t, env, newState(t, false, 1),
		ToggleAddOn{AddOn: domain.AddOnInsurance},
		ToggleAddOn{AddOn: domain.AddOnSeat},
		ToggleAddOn{AddOn: domain.AddOnInsurance},
	)
	assert.Equal(t, models.AddOnSelection{SeatSelection: true}, s.AddOns)
}

func TestSubmitEmptyBlocksWithLabels(t *testing.T) {
	env := testEnv()
	s := reduce(t, env, newState(t, false, 2), AttemptSubmit{})

	assert.Equal(t, PhaseBlocked, s.Phase)
	assert.True(t, s.ValidateRequested)
	assert.Nil(t, s.Payload)
	assert.Equal(t, []string{
		"Contact: firstName", "Contact: lastName", "Contact: mobileNumber", "Contact: email",
		"Passenger: title", "Passenger: firstName", "Passenger: lastName",
		"Passenger: dob", "Passenger: nationality", "Passenger: passportNo",
		"Passenger: title", "Passenger: firstName", "Passenger: lastName",
		"Passenger: dob", "Passenger: nationality", "Passenger: passportNo",
	}, s.FormErrors)

	for _, f := range forms.ContactFields {
		assert.True(t, s.Contact.Touched[f])
	}
	assert.Len(t, s.Contact.Visible(env.Validator), 4)
}

func TestSubmitPartialBlocksOnRemainingFields(t *testing.T) {
	env := testEnv()
	actions := fillValid(1)
	actions = append(actions,
		EditContact{Field: forms.ContactMobileNumber, Value: "12345"},
		EditPassenger{Index: 0, Field: forms.PassengerPassportNo, Value: "ab12345"},
		AttemptSubmit{},
	)
	s := reduce(t, env, newState(t, false, 1), actions...)

	assert.Equal(t, PhaseBlocked, s.Phase)
	assert.Equal(t, []string{"Contact: mobileNumber", "Passenger: passportNo"}, s.FormErrors)
}

func TestSubmitValidAssemblesPayload(t *testing.T) {
	env := testEnv()
	actions := append(fillValid(2),
		ToggleAddOn{AddOn: domain.AddOnMeal},
		SelectBaggage{Index: 1, Leg: domain.Inward, Weight: 30},
		AttemptSubmit{},
	)
	s := reduce(t, env, newState(t, true, 2), actions...)

	require.Equal(t, PhaseReady, s.Phase)
	require.NotNil(t, s.Payload)
	assert.Empty(t, s.FormErrors)

	p := s.Payload
	assert.Equal(t, "somchai@example.com", p.ContactDetails.Email)
	assert.Len(t, p.PassengerDetails, 2)
	assert.Equal(t, models.AddOnSelection{MealOption: true}, p.AddOns)
	assert.Equal(t, []models.BaggageSelection{{}, {Inward: 30}}, p.BaggageSelections)

	settled := reduce(t, env, s, Settle{Reference: "ref-1"})
	assert.Equal(t, PhaseIdle, settled.Phase)
	assert.Equal(t, "ref-1", settled.Reference)
	assert.NotNil(t, settled.Payload)
}

func TestBlockedResubmitDropsEarlierPayload(t *testing.T) {
	env := testEnv()
	s := reduce(t, env, newState(t, true, 2), append(fillValid(2), AttemptSubmit{}, Settle{Reference: "ref-1"})...)
	require.NotNil(t, s.Payload)
	require.Equal(t, "ref-1", s.Reference)

	s = reduce(t, env, s, EditContact{Field: forms.ContactEmail, Value: ""}, AttemptSubmit{})
	assert.Equal(t, PhaseBlocked, s.Phase)
	assert.Equal(t, []string{"Contact: email"}, s.FormErrors)
	assert.Nil(t, s.Payload)
	assert.Empty(t, s.Reference)

	s = reduce(t, env, s, Settle{})
	assert.Nil(t, Render(env, "r1", s, time.UTC).Payload)
}

func TestReadyResubmitClearsReference(t *testing.T) {
	env := testEnv()
	s := reduce(t, env, newState(t, false, 1), append(fillValid(1), AttemptSubmit{}, Settle{Reference: "ref-1"})...)
	s = reduce(t, env, s, EditContact{Field: forms.ContactFirstName, Value: "Anong"}, AttemptSubmit{})
	require.Equal(t, PhaseReady, s.Phase)
	assert.Empty(t, s.Reference)
	assert.Equal(t, "Anong", s.Payload.ContactDetails.FirstName)
}

func TestRejectDropsPayload(t *testing.T) {
	env := testEnv()
	s := reduce(t, env, newState(t, false, 1), append(fillValid(1), AttemptSubmit{})...)
	require.NotNil(t, s.Payload)

	s = reduce(t, env, s, Reject{})
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Nil(t, s.Payload)
	assert.Empty(t, s.Reference)
}

func TestEditAfterBlockedReturnsToIdle(t *testing.T) {
	env := testEnv()
	s := reduce(t, env, newState(t, false, 1), AttemptSubmit{})
	require.Equal(t, PhaseBlocked, s.Phase)

	s = reduce(t, env, s, EditContact{Field: forms.ContactFirstName, Value: "A"})
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.NotEmpty(t, s.FormErrors)

	s = reduce(t, env, s, DismissErrors{})
	assert.Empty(t, s.FormErrors)
	assert.True(t, s.ValidateRequested)
}

func TestQuote(t *testing.T) {
	env := testEnv()
	s := reduce(t, env, newState(t, true, 2),
		ToggleAddOn{AddOn: domain.AddOnInsurance},
		ToggleAddOn{AddOn: domain.AddOnMeal},
		SelectBaggage{Index: 0, Leg: domain.Outward, Weight: 15},
		SelectBaggage{Index: 1, Leg: domain.Inward, Weight: 30},
	)

	q := Quote(env, s)
	assert.Equal(t, models.PriceBreakdown{
		Fare:    2550,
		AddOns:  (150 + 280) * 2,
		Baggage: 999 + 1499,
		Grand:   2550 + 860 + 2498,
	}, q)
	assert.Equal(t, s.Draft.TotalPrice(), q.Fare)
}

func TestQuoteOneWayIgnoresInward(t *testing.T) {
	env := testEnv()
	s := newState(t, false, 1)
	s.Passengers.Baggage[0].Inward = 30

	q := Quote(env, s)
	assert.Equal(t, int64(1200), q.Fare)
	assert.Zero(t, q.Baggage)
	assert.Equal(t, int64(1200), q.Grand)
}

func TestRender(t *testing.T) {
	env := testEnv()
	loc, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)

	s := reduce(t, env, newState(t, true, 1),
		EditContact{Field: forms.ContactMobileNumber, Value: "12"},
		BlurContact{Field: forms.ContactMobileNumber},
		ToggleAddOn{AddOn: domain.AddOnSeat},
	)
	v := Render(env, "abc", s, loc)

	assert.Equal(t, "abc", v.ID)
	assert.True(t, v.RoundTrip)
	assert.Equal(t, "11/15/2024, 8:30:00 AM", v.Summary.Outward.DepartureTime)
	assert.Equal(t, "THB 2,550.00", v.Summary.TotalDisplay)
	require.NotNil(t, v.Summary.Inward)
	assert.Equal(t, "Unknown", v.Summary.Inward.DepartureTime)
	assert.Equal(t, "Unknown", v.Summary.Inward.Aircraft)

	assert.Equal(t, map[string]string{"mobileNumber": "Mobile number must be 10 digits."}, v.Contact.Errors)
	require.Len(t, v.Passengers, 1)
	assert.Empty(t, v.Passengers[0].Errors)
	require.Len(t, v.Passengers[0].Baggage, 2)
	assert.Equal(t, domain.Inward, v.Passengers[0].Baggage[1].Leg)

	require.Len(t, v.AddOns, 4)
	assert.Equal(t, "THB 100.00 / person", v.AddOns[2].PriceDisplay)
	assert.True(t, v.AddOns[2].Added)
	assert.False(t, v.CanSubmit)
	assert.Len(t, v.FormData.BaggageSelections, 1)
}

func TestRenderOneWayHasNoReturnBaggage(t *testing.T) {
	env := testEnv()
	v := Render(env, "x", newState(t, false, 2), time.UTC)
	assert.Nil(t, v.Summary.Inward)
	for _, p := range v.Passengers {
		require.Len(t, p.Baggage, 1)
		assert.Equal(t, domain.Outward, p.Baggage[0].Leg)
	}
}
