package handlers

import (
	"net/http"

	"flyaway/internal/domain"
	"flyaway/internal/forms"
	"flyaway/internal/reservation"

	"github.com/gin-gonic/gin"
)

type fieldEditRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type fieldBlurRequest struct {
	Field string `json:"field" binding:"required"`
}

type baggageRequest struct {
	Outward *int `json:"outward"`
	Inward  *int `json:"inward"`
}

// POST /api/reservations
func (h *Handler) CreateReservation(c *gin.Context) {
	_, view, err := h.reservationService(c).Start()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+view.ID)
	c.JSON(http.StatusCreated, view)
}

// GET /api/reservations/:id
func (h *Handler) GetReservation(c *gin.Context) {
	view, err := h.reservationService(c).View(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PATCH /api/reservations/:id/contact
func (h *Handler) EditContact(c *gin.Context) {
	var req fieldEditRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	field, err := forms.ParseContactField(req.Field)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.dispatch(c, reservation.EditContact{Field: field, Value: req.Value})
}

// POST /api/reservations/:id/contact/blur
func (h *Handler) BlurContact(c *gin.Context) {
	var req fieldBlurRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	field, err := forms.ParseContactField(req.Field)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.dispatch(c, reservation.BlurContact{Field: field})
}

// PATCH /api/reservations/:id/passengers/:index
func (h *Handler) EditPassenger(c *gin.Context) {
	index, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	var req fieldEditRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	field, err := forms.ParsePassengerField(req.Field)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.dispatch(c, reservation.EditPassenger{Index: index, Field: field, Value: req.Value})
}

// POST /api/reservations/:id/passengers/:index/blur
func (h *Handler) BlurPassenger(c *gin.Context) {
	index, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	var req fieldBlurRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	field, err := forms.ParsePassengerField(req.Field)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.dispatch(c, reservation.BlurPassenger{Index: index, Field: field})
}

// POST /api/reservations/:id/addons/:addon/toggle
func (h *Handler) ToggleAddOn(c *gin.Context) {
	addOn, ok := domain.ParseAddOn(c.Param("addon"))
	if !ok {
		respondError(c, http.StatusNotFound, "not_found", "unknown add-on", nil)
		return
	}
	h.dispatch(c, reservation.ToggleAddOn{AddOn: addOn})
}

// PUT /api/reservations/:id/baggage/:index
func (h *Handler) SelectBaggage(c *gin.Context) {
	index, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	var req baggageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	var actions []reservation.Action
	if req.Outward != nil {
		actions = append(actions, reservation.SelectBaggage{Index: index, Leg: domain.Outward, Weight: *req.Outward})
	}
	if req.Inward != nil {
		actions = append(actions, reservation.SelectBaggage{Index: index, Leg: domain.Inward, Weight: *req.Inward})
	}
	if len(actions) == 0 {
		respondError(c, http.StatusBadRequest, "invalid_payload", "outward or inward is required", nil)
		return
	}
	h.dispatch(c, actions...)
}

// POST /api/reservations/:id/submit
func (h *Handler) SubmitReservation(c *gin.Context) {
	view, err := h.reservationService(c).Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reference":   view.Reference,
		"payload":     view.Payload,
		"reservation": view,
	})
}

// DELETE /api/reservations/:id/errors
func (h *Handler) DismissErrors(c *gin.Context) {
	h.dispatch(c, reservation.DismissErrors{})
}

func (h *Handler) dispatch(c *gin.Context, actions ...reservation.Action) {
	view, err := h.reservationService(c).Dispatch(c.Param("id"), actions...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
