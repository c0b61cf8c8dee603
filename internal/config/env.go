package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8080"
	defaultLogLevel     = "info"
	defaultAuthDelay    = time.Second
	defaultSessionTTL   = 30 * time.Minute
	defaultDisplayZone  = "Asia/Bangkok"
	devSessionSecret    = "flyaway-dev-secret-change-me"
	defaultCORSOrigins  = "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173"
	defaultSweepDivisor = 4
	minSweepInterval    = time.Second
)

type Env struct {
	AppAddr  string
	GinMode  string
	LogLevel string
	// CORSOrigins lists the allowed cross-origin callers (CORS_ALLOWED_ORIGINS, comma separated).
	CORSOrigins   []string
	SessionSecret []byte
	// AuthDelay is the simulated latency of login and signup.
	AuthDelay time.Duration
	// SessionTTL is how long an untouched reservation page stays alive.
	SessionTTL  time.Duration
	DisplayZone string
	// SubmissionDSN selects the MySQL submission store; empty keeps submissions log-only.
	SubmissionDSN string
	// Warnings collects values that were rejected in favor of defaults.
	Warnings []string
}

// SweepInterval is how often expired reservation sessions are collected. It
// never drops below minSweepInterval so the ticker stays valid.
func (e Env) SweepInterval() time.Duration {
	if e.SessionTTL <= 0 {
		return time.Minute
	}
	return max(e.SessionTTL/defaultSweepDivisor, minSweepInterval)
}

func LoadEnv() Env {
	env := Env{
		AppAddr:       getEnv("APP_ADDR", defaultAddr),
		GinMode:       getEnv("GIN_MODE", ""),
		LogLevel:      getEnv("LOG_LEVEL", defaultLogLevel),
		CORSOrigins:   splitCSV(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		SessionSecret: []byte(getEnv("SESSION_SECRET", devSessionSecret)),
		DisplayZone:   getEnv("DISPLAY_TZ", defaultDisplayZone),
		SubmissionDSN: getEnv("SUBMISSION_DSN", ""),
	}
	env.AuthDelay = env.getDuration("AUTH_DELAY", defaultAuthDelay)
	env.SessionTTL = env.getDuration("SESSION_TTL", defaultSessionTTL)
	if string(env.SessionSecret) == devSessionSecret {
		env.Warnings = append(env.Warnings, "SESSION_SECRET not set, using development secret")
	}
	return env
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *Env) getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		e.Warnings = append(e.Warnings, fmt.Sprintf("invalid %s=%q, using %s", key, raw, fallback))
		return fallback
	}
	return d
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
