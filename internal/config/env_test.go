package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "GIN_MODE", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "SESSION_SECRET", "AUTH_DELAY", "SESSION_TTL", "DISPLAY_TZ", "SUBMISSION_DSN"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()

	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, time.Second, env.AuthDelay)
	assert.Equal(t, 30*time.Minute, env.SessionTTL)
	assert.Equal(t, 30*time.Minute/4, env.SweepInterval())
	assert.Equal(t, "Asia/Bangkok", env.DisplayZone)
	assert.Len(t, env.CORSOrigins, 4)
	assert.Empty(t, env.SubmissionDSN)
	assert.Equal(t, []string{"SESSION_SECRET not set, using development secret"}, env.Warnings)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", " :9090 ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("AUTH_DELAY", "250ms")
	t.Setenv("SESSION_TTL", "soon")

	env := LoadEnv()
	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.CORSOrigins)
	assert.Equal(t, []byte("s3cret"), env.SessionSecret)
	assert.Equal(t, 250*time.Millisecond, env.AuthDelay)
	assert.Equal(t, 30*time.Minute, env.SessionTTL)
	assert.Equal(t, []string{`invalid SESSION_TTL="soon", using 30m0s`}, env.Warnings)
}

func TestSweepIntervalWithoutTTL(t *testing.T) {
	assert.Equal(t, time.Minute, Env{}.SweepInterval())
}

func TestSweepIntervalHasFloor(t *testing.T) {
	assert.Equal(t, time.Second, Env{SessionTTL: 3 * time.Nanosecond}.SweepInterval())
	assert.Equal(t, time.Second, Env{SessionTTL: 2 * time.Second}.SweepInterval())
	assert.Equal(t, 5*time.Second, Env{SessionTTL: 20 * time.Second}.SweepInterval())
}
