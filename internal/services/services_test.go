package services

import (
	"context"
	"testing"
	"time"

	"flyaway/internal/catalog"
	"flyaway/internal/domain"
	"flyaway/internal/forms"
	"flyaway/internal/reservation"
	"flyaway/internal/validation"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)

func testValidator() *validation.Validator {
	return validation.New(validation.WithClock(func() time.Time { return testNow }))
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

// submitterFunc adapts a function to Submitter.
type submitterFunc func(ctx context.Context, sub Submission) error

func (f submitterFunc) Submit(ctx context.Context, sub Submission) error { return f(ctx, sub) }

func newReservationService(t *testing.T, sub Submitter) ReservationService {
	t.Helper()
	c := testCatalog(t)
	return ReservationService{
		Store:     reservation.NewStore(time.Hour, func() time.Time { return testNow }),
		Env:       NewReservationEnv(c, testValidator()),
		Catalog:   c,
		Submitter: sub,
		NewRef:    func() string { return "ref-1" },
	}
}

func validReservationActions(passengers int) []reservation.Action {
	out := []reservation.Action{
		reservation.EditContact{Field: forms.ContactFirstName, Value: "Somchai"},
		reservation.EditContact{Field: forms.ContactLastName, Value: "Thai"},
		reservation.EditContact{Field: forms.ContactMobileNumber, Value: "0812345678"},
		reservation.EditContact{Field: forms.ContactEmail, Value: "somchai@example.com"},
	}
	for i := 0; i < passengers; i++ {
		out = append(out,
			reservation.EditPassenger{Index: i, Field: forms.PassengerTitle, Value: "Mrs"},
			reservation.EditPassenger{Index: i, Field: forms.PassengerFirstName, Value: "Malee"},
			reservation.EditPassenger{Index: i, Field: forms.PassengerLastName, Value: "Thai"},
			reservation.EditPassenger{Index: i, Field: forms.PassengerDOB, Value: "1988-02-29"},
			reservation.EditPassenger{Index: i, Field: forms.PassengerNationality, Value: "Thai"},
			reservation.EditPassenger{Index: i, Field: forms.PassengerPassportNo, Value: "AA1234567"},
		)
	}
	return out
}

func isValidation(err error) bool { return domain.IsValidation(err) }
