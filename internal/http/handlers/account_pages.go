package handlers

import (
	"net/http"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /login takes the header's login form. Success sets the session
// cookie and returns to the landing page; failures re-render the panel.
func (h *Handler) LoginPage(c *gin.Context) {
	hv := h.newHomeView()
	hv.Panel = "login"
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		hv.LoginMessage = "Please check the form and try again."
		h.renderHome(c, http.StatusBadRequest, hv)
		return
	}
	hv.Login = models.LoginForm{Email: form.Email, RememberMe: form.RememberMe}

	sess, err := h.authService(c).Login(c.Request.Context(), form)
	if err != nil {
		status, ok := authPageStatus(err)
		if !ok {
			RespondDomainError(c, err)
			return
		}
		hv.LoginErrors = fieldErrors(err)
		if domain.IsUnauthorized(err) {
			hv.LoginMessage = "Incorrect email or password."
		}
		h.renderHome(c, status, hv)
		return
	}
	h.setSessionCookie(c, sess)
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /signup takes the header's signup form.
func (h *Handler) SignupPage(c *gin.Context) {
	hv := h.newHomeView()
	hv.Panel = "signup"
	var form models.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		hv.SignupMessage = "Please check the form and try again."
		h.renderHome(c, http.StatusBadRequest, hv)
		return
	}
	hv.Signup = models.SignupForm{
		FullName:    form.FullName,
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		AcceptTerms: form.AcceptTerms,
	}

	sess, err := h.authService(c).Signup(c.Request.Context(), form)
	if err != nil {
		status, ok := authPageStatus(err)
		if !ok {
			RespondDomainError(c, err)
			return
		}
		hv.SignupErrors = fieldErrors(err)
		if domain.IsConflict(err) {
			hv.SignupMessage = "An account with this email already exists."
		}
		h.renderHome(c, status, hv)
		return
	}
	h.setSessionCookie(c, sess)
	c.Redirect(http.StatusSeeOther, "/")
}

// authPageStatus picks the status for errors the auth panels display inline.
func authPageStatus(err error) (int, bool) {
	switch {
	case domain.IsValidation(err):
		return http.StatusUnprocessableEntity, true
	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, true
	case domain.IsConflict(err):
		return http.StatusConflict, true
	}
	return 0, false
}

func fieldErrors(err error) map[string]string {
	m, _ := domain.ValidationFields(err).(map[string]string)
	return m
}
