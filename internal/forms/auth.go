package forms

import (
	"flyaway/internal/domain/models"
	"flyaway/internal/validation"
)

type LoginField string

const (
	LoginEmail    LoginField = "email"
	LoginPassword LoginField = "password"
)

var loginSchema = validation.Schema[LoginField]{
	Fields: []LoginField{LoginEmail, LoginPassword},
	Messages: map[LoginField]map[string]string{
		LoginEmail:    {"": "Please enter a valid email address"},
		LoginPassword: {"": "Password must be at least 6 characters"},
	},
}

func ValidateLogin(v *validation.Validator, form models.LoginForm) validation.Errors[LoginField] {
	return validation.Check(v, loginSchema, form)
}

type SignupField string

const (
	SignupFullName        SignupField = "fullName"
	SignupEmail           SignupField = "email"
	SignupPassword        SignupField = "password"
	SignupConfirmPassword SignupField = "confirmPassword"
	SignupPhoneNumber     SignupField = "phoneNumber"
	SignupAcceptTerms     SignupField = "acceptTerms"
)

var signupSchema = validation.Schema[SignupField]{
	Fields: []SignupField{
		SignupFullName, SignupEmail, SignupPassword,
		SignupConfirmPassword, SignupPhoneNumber, SignupAcceptTerms,
	},
	Messages: map[SignupField]map[string]string{
		SignupFullName: {"": "Name must be at least 2 characters"},
		SignupEmail:    {"": "Please enter a valid email address"},
		SignupPassword: {
			"min":            "Password must be at least 8 characters",
			"strongpassword": "Password must contain at least one uppercase letter, one lowercase letter, and one number",
		},
		SignupConfirmPassword: {"": "Passwords don't match"},
		SignupPhoneNumber:     {"": "Phone number must be at most 10 digits"},
		SignupAcceptTerms:     {"": "You must accept the terms and conditions to sign up"},
	},
}

// ValidateSignup checks the signup schema. A confirmation mismatch is reported
// on confirmPassword only.
func ValidateSignup(v *validation.Validator, form models.SignupForm) validation.Errors[SignupField] {
	return validation.Check(v, signupSchema, form)
}
