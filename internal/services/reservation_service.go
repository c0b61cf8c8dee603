package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flyaway/internal/catalog"
	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/repositories"
	"flyaway/internal/reservation"
	"flyaway/internal/utils"
	"flyaway/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submission is what leaves the reservation page on a valid submit.
type Submission struct {
	Reference string
	Payload   models.ReservationPayload
	Quote     models.PriceBreakdown
}

// Submitter hands an assembled reservation downstream.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// LogSubmitter only records the submission. It never fails.
type LogSubmitter struct{}

func (LogSubmitter) Submit(_ context.Context, sub Submission) error {
	zap.L().Info("reservation submitted",
		zap.String("reference", sub.Reference),
		zap.Int("passengers", len(sub.Payload.PassengerDetails)),
		zap.Int64("grand_total", sub.Quote.Grand),
	)
	return nil
}

// DBSubmitter stores the payload in the submissions table.
type DBSubmitter struct {
	Repo repositories.ReservationRepository
	Now  func() time.Time
}

func (s DBSubmitter) Submit(ctx context.Context, sub Submission) error {
	raw, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Repo.Insert(ctx, repositories.Submission{
		Reference:      sub.Reference,
		ContactEmail:   sub.Payload.ContactDetails.Email,
		PassengerCount: len(sub.Payload.PassengerDetails),
		Payload:        raw,
		GrandTotal:     sub.Quote.Grand,
		CreatedAt:      now().UTC(),
	})
}

// ReservationService runs reservation pages stored in Store.
type ReservationService struct {
	Store     *reservation.Store
	Env       reservation.Env
	Catalog   *catalog.Catalog
	Submitter Submitter
	Location  *time.Location
	RequestID string
	NewRef    func() string
}

// NewReservationEnv wires the reducer environment from the catalog.
func NewReservationEnv(c *catalog.Catalog, v *validation.Validator) reservation.Env {
	return reservation.Env{
		Validator: v,
		Baggage: map[domain.Leg][]models.BaggageOption{
			domain.Outward: c.BaggageOptions(domain.Outward),
			domain.Inward:  c.BaggageOptions(domain.Inward),
		},
		AddOns: c.AddOnTable(),
	}
}

// Start opens a reservation for the catalog traveler on the catalog flights.
func (s ReservationService) Start() (string, reservation.View, error) {
	st, err := reservation.New(s.Catalog.Draft(s.Catalog.Flights.RoundTrip), s.Catalog.Traveler.PassengerCount)
	if err != nil {
		return "", reservation.View{}, err
	}
	id := s.Store.Create(st)
	utils.LogEvent(s.RequestID, "reservation", "start", fmt.Sprintf("id=%s passengers=%d", id, s.Catalog.Traveler.PassengerCount))
	return id, s.render(id, st), nil
}

func (s ReservationService) View(id string) (reservation.View, error) {
	st, err := s.Store.Get(id)
	if err != nil {
		return reservation.View{}, err
	}
	return s.render(id, st), nil
}

// State returns the raw state behind id.
func (s ReservationService) State(id string) (reservation.State, error) {
	return s.Store.Get(id)
}

// Dispatch applies actions in order as one batch. If any action fails the
// stored state is left untouched and the error is returned with its view.
func (s ReservationService) Dispatch(id string, actions ...reservation.Action) (reservation.View, error) {
	st, err := s.Store.Update(id, func(st reservation.State) (reservation.State, error) {
		for _, a := range actions {
			next, err := reservation.Reduce(s.Env, st, a)
			if err != nil {
				return st, err
			}
			st = next
		}
		return st, nil
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return reservation.View{}, err
		}
		cur, getErr := s.Store.Get(id)
		if getErr != nil {
			return reservation.View{}, getErr
		}
		return s.render(id, cur), err
	}
	return s.render(id, st), nil
}

// Submit attempts a submit. A blocked attempt returns a ValidationError whose
// Fields are the summary labels; a ready one is handed to the Submitter.
func (s ReservationService) Submit(ctx context.Context, id string) (reservation.View, error) {
	st, err := s.Store.Update(id, func(st reservation.State) (reservation.State, error) {
		return reservation.Reduce(s.Env, st, reservation.AttemptSubmit{})
	})
	if err != nil {
		return reservation.View{}, err
	}

	if st.Phase == reservation.PhaseBlocked {
		view, _ := s.settle(id, "")
		utils.LogEvent(s.RequestID, "reservation", "submit_blocked", fmt.Sprintf("id=%s errors=%d", id, len(st.FormErrors)))
		return view, domain.ValidationError{
			Field:  "reservation",
			Msg:    "please correct the highlighted fields",
			Fields: st.FormErrors,
		}
	}

	sub := Submission{Reference: s.newRef(), Payload: *st.Payload, Quote: reservation.Quote(s.Env, st)}
	if err := s.submitter().Submit(ctx, sub); err != nil {
		_, _ = s.Dispatch(id, reservation.Reject{})
		return reservation.View{}, domain.InternalError{Msg: "submit reservation failed", Err: err}
	}
	utils.LogEvent(s.RequestID, "reservation", "submit", fmt.Sprintf("id=%s reference=%s", id, sub.Reference))
	return s.settle(id, sub.Reference)
}

func (s ReservationService) settle(id, ref string) (reservation.View, error) {
	return s.Dispatch(id, reservation.Settle{Reference: ref})
}

func (s ReservationService) render(id string, st reservation.State) reservation.View {
	return reservation.Render(s.Env, id, st, s.location())
}

func (s ReservationService) submitter() Submitter {
	if s.Submitter != nil {
		return s.Submitter
	}
	return LogSubmitter{}
}

func (s ReservationService) newRef() string {
	if s.NewRef != nil {
		return s.NewRef()
	}
	return uuid.NewString()
}

func (s ReservationService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}
