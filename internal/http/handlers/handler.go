// Package handlers serves the landing page, the reservation page and the JSON
// API behind them.
package handlers

import (
	"context"
	"time"

	"flyaway/internal/catalog"
	"flyaway/internal/http/middleware"
	"flyaway/internal/reservation"
	"flyaway/internal/services"
	"flyaway/internal/validation"

	"github.com/gin-gonic/gin"
)

// Handler holds what the routes share. Services are built per request so
// each carries the request id.
type Handler struct {
	Catalog      *catalog.Catalog
	Validator    *validation.Validator
	Reservations *reservation.Store
	ReservEnv    reservation.Env
	Submitter    services.Submitter
	Accounts     *services.AccountDirectory
	Tokens       services.TokenIssuer
	AuthDelay    time.Duration
	AuthSleep    func(ctx context.Context, d time.Duration) error
	Location     *time.Location
	Now          func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) reservationService(c *gin.Context) services.ReservationService {
	return services.ReservationService{
		Store:     h.Reservations,
		Env:       h.ReservEnv,
		Catalog:   h.Catalog,
		Submitter: h.Submitter,
		Location:  h.Location,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Validator: h.Validator,
		Accounts:  h.Accounts,
		Tokens:    h.Tokens,
		Delay:     h.AuthDelay,
		Sleep:     h.AuthSleep,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) searchService(c *gin.Context) services.SearchService {
	return services.SearchService{
		Validator: h.Validator,
		Catalog:   h.Catalog,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Reservations: h.reservationService(c),
		RequestID:    middleware.GetRequestID(c),
		Now:          h.Now,
	}
}

func (h *Handler) location() *time.Location {
	if h.Location != nil {
		return h.Location
	}
	return time.UTC
}
