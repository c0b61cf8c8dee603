package handlers

import (
	"net/http"
	"strconv"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/forms"
	"flyaway/internal/http/middleware"
	"flyaway/internal/reservation"
	"flyaway/internal/services"
	"flyaway/internal/utils"

	"github.com/gin-gonic/gin"
)

var contactLabels = map[forms.ContactField]string{
	forms.ContactFirstName:    "First Name",
	forms.ContactLastName:     "Last Name",
	forms.ContactMobileNumber: "Mobile Number",
	forms.ContactEmail:        "Email",
}

var passengerLabels = map[forms.PassengerField]string{
	forms.PassengerTitle:       "Title",
	forms.PassengerFirstName:   "First Name",
	forms.PassengerLastName:    "Last Name",
	forms.PassengerDOB:         "Date of Birth",
	forms.PassengerNationality: "Nationality",
	forms.PassengerPassportNo:  "Passport Number",
}

var legLabels = map[domain.Leg]string{
	domain.Outward: "Outward baggage",
	domain.Inward:  "Return baggage",
}

type inputView struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Error   string
	Options []string
}

type baggageInputView struct {
	Name     string
	Label    string
	Selected int
	Options  []baggageOptionView
}

type baggageOptionView struct {
	Weight int
	Label  string
}

type passengerFormView struct {
	Number  int
	Inputs  []inputView
	Baggage []baggageInputView
}

type layoutView struct {
	Brand     string
	Languages any
	Footer    any
	Year      int
	User      string
}

func (h *Handler) layout(c *gin.Context) layoutView {
	lv := layoutView{
		Brand:     h.Catalog.Brand,
		Languages: h.Catalog.Languages,
		Footer:    h.Catalog.Footer,
		Year:      utils.CopyrightYear(h.now().In(h.location())),
	}
	if sess, ok := middleware.GetSession(c); ok {
		lv.User = sess.Email
		if sess.Name != "" {
			lv.User = sess.Name
		}
	}
	return lv
}

// homeView is what the landing page renders besides the catalog content.
// Password fields are never echoed back.
type homeView struct {
	Search        models.TripSearchQuery
	SearchErrors  any
	Results       *services.SearchResult
	Login         models.LoginForm
	LoginErrors   map[string]string
	LoginMessage  string
	Signup        models.SignupForm
	SignupErrors  map[string]string
	SignupMessage string
	Panel         string
}

func (h *Handler) newHomeView() homeView {
	return homeView{Search: forms.NewSearch(h.now().In(h.location()))}
}

// GET /
func (h *Handler) HomePage(c *gin.Context) {
	h.renderHome(c, http.StatusOK, h.newHomeView())
}

// GET /search renders the landing page with the matching flights. swap=1
// re-renders the form with departure and arrival exchanged.
func (h *Handler) SearchPage(c *gin.Context) {
	hv := h.newHomeView()
	if err := c.ShouldBindQuery(&hv.Search); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_query", "invalid search query", err.Error())
		return
	}
	if c.Query("swap") != "" {
		hv.Search = forms.SwapLocations(hv.Search)
		h.renderHome(c, http.StatusOK, hv)
		return
	}
	res, err := h.searchService(c).Search(hv.Search)
	if err != nil {
		if !domain.IsValidation(err) {
			RespondDomainError(c, err)
			return
		}
		hv.SearchErrors = domain.ValidationFields(err)
		h.renderHome(c, http.StatusUnprocessableEntity, hv)
		return
	}
	hv.Search, hv.Results = res.Query, &res
	h.renderHome(c, http.StatusOK, hv)
}

func (h *Handler) renderHome(c *gin.Context, status int, hv homeView) {
	c.HTML(status, "home.tmpl", gin.H{
		"Layout":       h.layout(c),
		"Hero":         h.Catalog.Hero,
		"Home":         hv,
		"Search":       hv.Search,
		"SearchErrors": hv.SearchErrors,
		"Results":      hv.Results,
		"CabinClasses": forms.CabinClasses,
		"Features":     h.Catalog.Features,
		"Promos":       h.Catalog.Promos,
		"Testimonials": h.Catalog.Testimonials,
	})
}

// GET /reservation
func (h *Handler) StartReservationPage(c *gin.Context) {
	id, _, err := h.reservationService(c).Start()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/reservation/"+id)
}

// GET /reservation/:id
func (h *Handler) ReservationPage(c *gin.Context) {
	view, err := h.reservationService(c).View(c.Param("id"))
	if err != nil {
		h.renderMissing(c, err)
		return
	}
	h.renderReservation(c, http.StatusOK, view, "")
}

// POST /reservation/:id takes the whole form. Every posted field is applied;
// non-empty ones count as visited. action=submit then attempts a submit and
// action=dismiss clears the error summary.
func (h *Handler) ReservationFormPost(c *gin.Context) {
	id := c.Param("id")
	svc := h.reservationService(c)
	st, err := svc.State(id)
	if err != nil {
		h.renderMissing(c, err)
		return
	}

	actions := formActions(c, st)
	if c.PostForm("action") == "dismiss" {
		actions = append(actions, reservation.DismissErrors{})
	}
	view, err := svc.Dispatch(id, actions...)
	if err != nil {
		if !domain.IsValidation(err) {
			h.renderMissing(c, err)
			return
		}
		h.renderReservation(c, http.StatusUnprocessableEntity, view, "Your changes were not saved: "+err.Error())
		return
	}

	if c.PostForm("action") == "submit" {
		view, err = svc.Submit(c.Request.Context(), id)
		if err != nil && !domain.IsValidation(err) {
			RespondDomainError(c, err)
			return
		}
		if err != nil {
			h.renderReservation(c, http.StatusUnprocessableEntity, view, "")
			return
		}
	}
	h.renderReservation(c, http.StatusOK, view, "")
}

func formActions(c *gin.Context, st reservation.State) []reservation.Action {
	var out []reservation.Action
	for _, f := range forms.ContactFields {
		v, ok := c.GetPostForm("contact." + string(f))
		if !ok {
			continue
		}
		out = append(out, reservation.EditContact{Field: f, Value: v})
		if v != "" {
			out = append(out, reservation.BlurContact{Field: f})
		}
	}

	for i := 0; i < st.Passengers.Len(); i++ {
		prefix := "passenger." + strconv.Itoa(i) + "."
		for _, f := range forms.PassengerFields {
			v, ok := c.GetPostForm(prefix + string(f))
			if !ok {
				continue
			}
			out = append(out, reservation.EditPassenger{Index: i, Field: f, Value: v})
			if v != "" {
				out = append(out, reservation.BlurPassenger{Index: i, Field: f})
			}
		}
		for _, leg := range st.Passengers.BaggageLegs() {
			raw, ok := c.GetPostForm("baggage." + strconv.Itoa(i) + "." + string(leg))
			if !ok {
				continue
			}
			if w, err := strconv.Atoi(raw); err == nil {
				out = append(out, reservation.SelectBaggage{Index: i, Leg: leg, Weight: w})
			}
		}
	}

	if _, ok := c.GetPostForm("addons"); ok {
		for _, a := range domain.AddOns {
			_, want := c.GetPostForm("addon." + string(a))
			if want != st.AddOns.Has(a) {
				out = append(out, reservation.ToggleAddOn{AddOn: a})
			}
		}
	}
	return out
}

// renderReservation renders the reservation page; notice, when set, explains
// why the last post was rejected.
func (h *Handler) renderReservation(c *gin.Context, status int, view reservation.View, notice string) {
	contact := make([]inputView, 0, len(forms.ContactFields))
	for _, f := range forms.ContactFields {
		contact = append(contact, inputView{
			Name:  "contact." + string(f),
			Label: contactLabels[f],
			Type:  contactInputType(f),
			Value: contactValue(view, f),
			Error: view.Contact.Errors[string(f)],
		})
	}

	passengers := make([]passengerFormView, 0, len(view.Passengers))
	for _, p := range view.Passengers {
		pf := passengerFormView{Number: p.Index + 1}
		prefix := "passenger." + strconv.Itoa(p.Index) + "."
		for _, f := range forms.PassengerFields {
			in := inputView{
				Name:  prefix + string(f),
				Label: passengerLabels[f],
				Type:  "text",
				Value: passengerValue(p, f),
				Error: p.Errors[string(f)],
			}
			switch f {
			case forms.PassengerTitle:
				in.Type = "select"
				in.Options = forms.Titles
			case forms.PassengerDOB:
				in.Type = "date"
			}
			pf.Inputs = append(pf.Inputs, in)
		}
		for _, b := range p.Baggage {
			bv := baggageInputView{
				Name:     "baggage." + strconv.Itoa(p.Index) + "." + string(b.Leg),
				Label:    legLabels[b.Leg],
				Selected: b.Selected,
			}
			for _, o := range b.Options {
				label := o.Label
				if o.Price > 0 {
					label += " (" + utils.FormatBaht(o.Price) + ")"
				}
				bv.Options = append(bv.Options, baggageOptionView{Weight: o.Weight, Label: label})
			}
			pf.Baggage = append(pf.Baggage, bv)
		}
		passengers = append(passengers, pf)
	}

	c.HTML(status, "reservation.tmpl", gin.H{
		"Layout":     h.layout(c),
		"View":       view,
		"Notice":     notice,
		"Contact":    contact,
		"Passengers": passengers,
	})
}

func (h *Handler) renderMissing(c *gin.Context, err error) {
	if !domain.IsNotFound(err) {
		RespondDomainError(c, err)
		return
	}
	c.HTML(http.StatusNotFound, "missing.tmpl", gin.H{"Layout": h.layout(c)})
}

func contactInputType(f forms.ContactField) string {
	switch f {
	case forms.ContactEmail:
		return "email"
	case forms.ContactMobileNumber:
		return "tel"
	}
	return "text"
}

func contactValue(v reservation.View, f forms.ContactField) string {
	c := v.Contact.Values
	switch f {
	case forms.ContactFirstName:
		return c.FirstName
	case forms.ContactLastName:
		return c.LastName
	case forms.ContactMobileNumber:
		return c.MobileNumber
	case forms.ContactEmail:
		return c.Email
	}
	return ""
}

func passengerValue(p reservation.PassengerView, f forms.PassengerField) string {
	r := p.Values
	switch f {
	case forms.PassengerTitle:
		return r.Title
	case forms.PassengerFirstName:
		return r.FirstName
	case forms.PassengerLastName:
		return r.LastName
	case forms.PassengerDOB:
		return r.DOB
	case forms.PassengerNationality:
		return r.Nationality
	case forms.PassengerPassportNo:
		return r.PassportNo
	}
	return ""
}
