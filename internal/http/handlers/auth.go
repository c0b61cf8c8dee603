package handlers

import (
	"net/http"
	"time"

	"flyaway/internal/domain/models"
	"flyaway/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var form models.LoginForm
	if !BindJSONOrError(c, &form) {
		return
	}
	sess, err := h.authService(c).Login(c.Request.Context(), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.setSessionCookie(c, sess)
	c.JSON(http.StatusOK, sess)
}

// POST /api/auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var form models.SignupForm
	if !BindJSONOrError(c, &form) {
		return
	}
	sess, err := h.authService(c).Signup(c.Request.Context(), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.setSessionCookie(c, sess)
	c.JSON(http.StatusCreated, sess)
}

// GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "not signed in", nil)
		return
	}
	sess.Token = ""
	c.JSON(http.StatusOK, sess)
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *Handler) setSessionCookie(c *gin.Context, sess models.AuthSession) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	if h.Now != nil {
		maxAge = int(sess.ExpiresAt.Sub(h.Now()).Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, sess.Token, maxAge, "/", "", false, true)
}
