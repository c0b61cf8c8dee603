package middleware

import (
	"strings"

	"flyaway/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey    = "auth_session"
	SessionCookie = "flyaway_session"
)

// TokenParser verifies a session token.
type TokenParser interface {
	Parse(raw string) (models.AuthSession, error)
}

// AuthOptional attaches the signed-in session when a valid bearer token or
// session cookie is present. Requests without one pass through unchanged.
func AuthOptional(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			raw, _ = c.Cookie(SessionCookie)
		}
		if raw != "" && tokens != nil {
			if sess, err := tokens.Parse(raw); err == nil {
				c.Set(sessionKey, sess)
			}
		}
		c.Next()
	}
}

// GetSession returns the session attached by AuthOptional.
func GetSession(c *gin.Context) (models.AuthSession, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return models.AuthSession{}, false
	}
	sess, ok := v.(models.AuthSession)
	return sess, ok
}

func bearerToken(h string) string {
	const prefix = "bearer "
	h = strings.TrimSpace(h)
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}
