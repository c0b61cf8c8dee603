package forms

import (
	"testing"
	"time"

	"flyaway/internal/domain"
	"flyaway/internal/domain/models"
	"flyaway/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidator() *validation.Validator {
	return validation.New(validation.WithClock(func() time.Time {
		return time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
	}))
}

func TestEmptyContactHasOnePresenceErrorPerField(t *testing.T) {
	errs := ValidateContact(testValidator(), models.ContactDetails{})
	assert.Equal(t, map[string]string{
		"firstName":    "First name is required.",
		"lastName":     "Last name is required.",
		"mobileNumber": "Mobile number is required.",
		"email":        "Email is required.",
	}, errs.Strings())
}

func TestContactPatternErrors(t *testing.T) {
	errs := ValidateContact(testValidator(), models.ContactDetails{
		FirstName:    "Somchai",
		LastName:     "Thai",
		MobileNumber: "12345",
		Email:        "not-an-email",
	})
	assert.Equal(t, "Mobile number must be 10 digits.", errs[ContactMobileNumber])
	assert.Equal(t, "Invalid email address", errs[ContactEmail])
	assert.Len(t, errs, 2)
}

func TestContactEditDoesNotTouch(t *testing.T) {
	v := testValidator()
	c := NewContact()

	c, err := c.Set(ContactMobileNumber, "12")
	require.NoError(t, err)
	assert.Equal(t, "12", c.Values.MobileNumber)
	assert.True(t, c.Visible(v).Empty())

	c, err = c.Blur(ContactMobileNumber)
	require.NoError(t, err)
	visible := c.Visible(v)
	assert.Equal(t, []ContactField{ContactMobileNumber}, visible.Keys(ContactFields))

	c = c.TouchAll()
	assert.Len(t, c.Visible(v), 4)
}

func TestContactIsCopiedOnWrite(t *testing.T) {
	orig := NewContact()
	next, err := orig.Blur(ContactEmail)
	require.NoError(t, err)
	assert.False(t, orig.Touched[ContactEmail])
	assert.True(t, next.Touched[ContactEmail])
}

func TestContactUnknownField(t *testing.T) {
	_, err := ParseContactField("nickname")
	assert.True(t, domain.IsValidation(err))

	c := NewContact()
	_, err = c.Set("nickname", "x")
	assert.True(t, domain.IsValidation(err))
	_, err = c.Blur("nickname")
	assert.True(t, domain.IsValidation(err))
}
