package services

import (
	"context"
	"testing"
	"time"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() AuthService {
	return AuthService{
		Validator: testValidator(),
		Accounts:  NewAccountDirectory(bcrypt.MinCost),
		Tokens:    TokenIssuer{Secret: []byte("test-secret"), Now: func() time.Time { return testNow }},
	}
}

func TestLoginValidation(t *testing.T) {
	svc := newAuthService()
	_, err := svc.Login(context.Background(), models.LoginForm{Email: "bad", Password: "1"})
	require.True(t, domain.IsValidation(err))
	fields, ok := domain.ValidationFields(err).(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Please enter a valid email address", fields["email"])
	assert.Equal(t, "Password must be at least 6 characters", fields["password"])
}

func TestLoginGuestIssuesToken(t *testing.T) {
	svc := newAuthService()
	sess, err := svc.Login(context.Background(), models.LoginForm{Email: "Guest@Example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", sess.Email)
	assert.Equal(t, testNow.Add(sessionTTL), sess.ExpiresAt)

	parsed, err := svc.Tokens.Parse(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", parsed.Email)
}

func TestRememberMeExtendsSession(t *testing.T) {
	svc := newAuthService()
	sess, err := svc.Login(context.Background(), models.LoginForm{Email: "a@b.co", Password: "secret", RememberMe: true})
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(rememberMeTTL), sess.ExpiresAt)
}

func TestSignupThenLogin(t *testing.T) {
	svc := newAuthService()
	form := models.SignupForm{
		FullName:        "Somchai Thai",
		Email:           "somchai@example.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		AcceptTerms:     true,
	}
	sess, err := svc.Signup(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "Somchai Thai", sess.Name)

	_, err = svc.Signup(context.Background(), form)
	assert.True(t, domain.IsConflict(err))

	sess, err = svc.Login(context.Background(), models.LoginForm{Email: "somchai@example.com", Password: "Passw0rd"})
	require.NoError(t, err)
	assert.Equal(t, "Somchai Thai", sess.Name)

	_, err = svc.Login(context.Background(), models.LoginForm{Email: "somchai@example.com", Password: "wrong-pass"})
	assert.True(t, domain.IsUnauthorized(err))
}

func TestSignupMismatchReportedOnConfirm(t *testing.T) {
	svc := newAuthService()
	_, err := svc.Signup(context.Background(), models.SignupForm{
		FullName:        "Somchai Thai",
		Email:           "somchai@example.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd1",
		AcceptTerms:     true,
	})
	require.True(t, domain.IsValidation(err))
	assert.Equal(t, map[string]string{"confirmPassword": "Passwords don't match"}, domain.ValidationFields(err))
}

func TestAuthDelayHonorsCancellation(t *testing.T) {
	svc := newAuthService()
	svc.Delay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, models.LoginForm{Email: "a@b.co", Password: "secret"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuthDelayUsesSleep(t *testing.T) {
	svc := newAuthService()
	svc.Delay = time.Second
	var slept time.Duration
	svc.Sleep = func(_ context.Context, d time.Duration) error {
		slept = d
		return nil
	}
	_, err := svc.Login(context.Background(), models.LoginForm{Email: "a@b.co", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, time.Second, slept)
}

func TestTokenParseRejects(t *testing.T) {
	issuer := TokenIssuer{Secret: []byte("one"), Now: func() time.Time { return testNow }}
	sess, err := issuer.Issue("a@b.co", "", time.Minute)
	require.NoError(t, err)

	_, err = TokenIssuer{Secret: []byte("two"), Now: issuer.Now}.Parse(sess.Token)
	assert.True(t, domain.IsUnauthorized(err))

	later := TokenIssuer{Secret: []byte("one"), Now: func() time.Time { return testNow.Add(time.Hour) }}
	_, err = later.Parse(sess.Token)
	assert.True(t, domain.IsUnauthorized(err))

	_, err = issuer.Parse("not-a-token")
	assert.True(t, domain.IsUnauthorized(err))
}
