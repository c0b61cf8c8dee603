package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/forms"
	"flyaway/internal/utils"
	"flyaway/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL    = 24 * time.Hour
	rememberMeTTL = 30 * 24 * time.Hour
)

type Account struct {
	Email string
	Name  string
	Phone string
	hash  []byte
}

// AccountDirectory is the in-memory account list behind the mock provider.
type AccountDirectory struct {
	mu       sync.RWMutex
	accounts map[string]Account
	cost     int
}

func NewAccountDirectory(cost int) *AccountDirectory {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AccountDirectory{accounts: map[string]Account{}, cost: cost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new account. A known email is a ConflictError.
func (d *AccountDirectory) Register(email, name, phone, password string) (Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}
	key := normalizeEmail(email)

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.accounts[key]; ok {
		return Account{}, domain.ConflictError{Resource: "account", Msg: "an account with this email already exists"}
	}
	acc := Account{Email: key, Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone), hash: hash}
	d.accounts[key] = acc
	return acc, nil
}

// Authenticate checks password for a registered email. Unknown emails return
// ok=false and no error.
func (d *AccountDirectory) Authenticate(email, password string) (acc Account, ok bool, err error) {
	d.mu.RLock()
	acc, ok = d.accounts[normalizeEmail(email)]
	d.mu.RUnlock()
	if !ok {
		return Account{}, false, nil
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return Account{}, true, domain.UnauthorizedError{Msg: "invalid email or password"}
	}
	return acc, true, nil
}

type sessionClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HS256 session tokens.
type TokenIssuer struct {
	Secret []byte
	Now    func() time.Time
}

func (t TokenIssuer) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t TokenIssuer) Issue(email, name string, ttl time.Duration) (models.AuthSession, error) {
	exp := t.now().Add(ttl)
	claims := sessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(t.now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("sign token: %w", err)
	}
	return models.AuthSession{Email: email, Name: name, Token: signed, ExpiresAt: exp}, nil
}

// Parse verifies raw and returns the session it carries.
func (t TokenIssuer) Parse(raw string) (models.AuthSession, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(tok *jwt.Token) (any, error) {
		return t.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return models.AuthSession{}, domain.UnauthorizedError{Msg: "invalid session token", Err: err}
	}
	out := models.AuthSession{Email: claims.Subject, Name: claims.Name, Token: raw}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// AuthService validates the login and signup forms and, after a simulated
// provider delay, issues a session token.
type AuthService struct {
	Validator *validation.Validator
	Accounts  *AccountDirectory
	Tokens    TokenIssuer
	Delay     time.Duration
	RequestID string
	Sleep     func(ctx context.Context, d time.Duration) error
}

func (s AuthService) Login(ctx context.Context, form models.LoginForm) (models.AuthSession, error) {
	if errs := forms.ValidateLogin(s.Validator, form); !errs.Empty() {
		return models.AuthSession{}, domain.ValidationError{Field: "login", Msg: "invalid login form", Fields: errs.Strings()}
	}
	if err := s.wait(ctx); err != nil {
		return models.AuthSession{}, err
	}

	email := normalizeEmail(form.Email)
	name := ""
	acc, registered, err := s.Accounts.Authenticate(email, form.Password)
	if err != nil {
		utils.LogEvent(s.RequestID, "auth", "login_rejected", "email="+email)
		return models.AuthSession{}, err
	}
	if registered {
		name = acc.Name
	}

	ttl := sessionTTL
	if form.RememberMe {
		ttl = rememberMeTTL
	}
	sess, err := s.Tokens.Issue(email, name, ttl)
	if err != nil {
		return models.AuthSession{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("email=%s registered=%t", email, registered))
	return sess, nil
}

func (s AuthService) Signup(ctx context.Context, form models.SignupForm) (models.AuthSession, error) {
	if errs := forms.ValidateSignup(s.Validator, form); !errs.Empty() {
		return models.AuthSession{}, domain.ValidationError{Field: "signup", Msg: "invalid signup form", Fields: errs.Strings()}
	}
	if err := s.wait(ctx); err != nil {
		return models.AuthSession{}, err
	}

	acc, err := s.Accounts.Register(form.Email, form.FullName, form.PhoneNumber, form.Password)
	if err != nil {
		return models.AuthSession{}, err
	}
	sess, err := s.Tokens.Issue(acc.Email, acc.Name, sessionTTL)
	if err != nil {
		return models.AuthSession{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "signup", "email="+acc.Email)
	return sess, nil
}

func (s AuthService) wait(ctx context.Context) error {
	sleep := s.Sleep
	if sleep == nil {
		sleep = SleepContext
	}
	if err := sleep(ctx, s.Delay); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("auth delay: %w", err)
	}
	return nil
}

// SleepContext waits for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
