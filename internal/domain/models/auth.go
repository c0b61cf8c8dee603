package models

import "time"

type LoginForm struct {
	Email      string `json:"email" form:"email" validate:"required,email"`
	Password   string `json:"password" form:"password" validate:"min=6"`
	RememberMe bool   `json:"rememberMe" form:"rememberMe"`
}

type SignupForm struct {
	FullName        string `json:"fullName" form:"fullName" validate:"min=2"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"min=8,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"eqfield=Password"`
	PhoneNumber     string `json:"phoneNumber" form:"phoneNumber" validate:"max=10"`
	AcceptTerms     bool   `json:"acceptTerms" form:"acceptTerms" validate:"eq=true"`
}

// AuthSession is returned after a successful login or signup.
type AuthSession struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
